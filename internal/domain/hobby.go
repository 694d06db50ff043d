package domain

// Hobby is a named activity with a year and a passion level. It does not
// know its owner.
type Hobby struct {
	ID           string
	Name         string
	PassionLevel PassionLevel
	Year         int64
}

// HobbyPatch carries a partial hobby update. Nil fields are left untouched.
type HobbyPatch struct {
	Name         *string
	PassionLevel *PassionLevel
	Year         *int64
}

// Empty reports whether the patch changes nothing.
func (p HobbyPatch) Empty() bool {
	return p.Name == nil && p.PassionLevel == nil && p.Year == nil
}

// Apply copies the set fields of p onto h.
func (p HobbyPatch) Apply(h *Hobby) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.PassionLevel != nil {
		h.PassionLevel = *p.PassionLevel
	}
	if p.Year != nil {
		h.Year = *p.Year
	}
}
