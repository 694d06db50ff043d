package domain

// User owns an ordered list of hobby ids. Ownership of a hobby is derived
// solely from its id appearing in this list.
type User struct {
	ID      string
	Name    string
	Hobbies []string
}

// UserPatch carries a partial user update. Nil fields are left untouched.
type UserPatch struct {
	Name    *string
	Hobbies *[]string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Hobbies == nil
}

// Apply copies the set fields of p onto u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Hobbies != nil {
		u.Hobbies = append([]string(nil), (*p.Hobbies)...)
	}
}
