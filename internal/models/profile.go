package models

// Profile is a developer profile held by the profile store.
type Profile struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
	Experience int      `json:"experience"` // years
	Location   string   `json:"location"`
	Avatar     string   `json:"avatar"`
	GitHub     string   `json:"github"`
	Available  bool     `json:"available"`
}

// Clone returns a copy that shares no memory with p.
func (p Profile) Clone() Profile {
	out := p
	if p.Skills != nil {
		out.Skills = append([]string(nil), p.Skills...)
	}
	return out
}

// ProfilePatch carries a partial update. Nil fields are left unchanged.
type ProfilePatch struct {
	Name       *string
	Title      *string
	Bio        *string
	Skills     *[]string
	Experience *int
	Location   *string
	Avatar     *string
	GitHub     *string
	Available  *bool
}

// Apply writes the non-nil fields of patch onto p. The id is never touched.
func (patch ProfilePatch) Apply(p *Profile) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.Skills != nil {
		p.Skills = append([]string(nil), (*patch.Skills)...)
	}
	if patch.Experience != nil {
		p.Experience = *patch.Experience
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Avatar != nil {
		p.Avatar = *patch.Avatar
	}
	if patch.GitHub != nil {
		p.GitHub = *patch.GitHub
	}
	if patch.Available != nil {
		p.Available = *patch.Available
	}
}
