package iobuild

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

// progressReader wraps a dump file in a byte-counting progress bar. The
// bar is created on the first Read so that the two sequential dump scans
// do not render on top of each other.
type progressReader struct {
	file   *os.File
	prefix string
	bar    *pb.ProgressBar
	proxy  io.Reader
}

func newProgressReader(file *os.File, prefix string) *progressReader {
	return &progressReader{file: file, prefix: prefix}
}

func (p *progressReader) Read(buf []byte) (int, error) {
	if p.proxy == nil {
		var size int64
		if info, err := p.file.Stat(); err == nil {
			size = info.Size()
		}
		p.bar = newProgressBar(size, p.prefix)
		p.proxy = p.bar.NewProxyReader(p.file)
	}
	return p.proxy.Read(buf)
}

func (p *progressReader) finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}

// newProgressBar creates a new progress bar with consistent settings.
func newProgressBar(total int64, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start64(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
