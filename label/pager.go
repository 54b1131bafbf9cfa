package label

// slot identifies where the next label lands on the sheet.
type slot struct {
	Index     int // running label index
	Page      int
	PosInPage int
}

// pager deals out label slots left to right, starting a new page after
// every perPage labels. A trailing partial page is still a page.
type pager struct {
	perPage int
	count   int
}

func newPager(perPage int) *pager {
	if perPage < 1 {
		perPage = 1
	}
	return &pager{perPage: perPage}
}

func (p *pager) next() slot {
	idx := p.count
	p.count++
	return slot{
		Index:     idx,
		Page:      idx / p.perPage,
		PosInPage: idx % p.perPage,
	}
}
