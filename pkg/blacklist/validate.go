package blacklist

// rootID mirrors the fixed root taxon id of the nodes dump. Blacklisting
// the root would empty the whole taxonomy.
const rootID = 1

func validate(t Taxon) error {
	if t.ID <= 0 {
		return entryError(t, "taxon id must be positive")
	}
	if t.ID == rootID {
		return entryError(t, "the root taxon cannot be blacklisted")
	}
	return nil
}
