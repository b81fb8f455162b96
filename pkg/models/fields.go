package models

// Complete reports whether every field required on create is set.
// Merge copies the truthy fields of src onto the receiver: empty strings,
// zero numbers and zero dates are treated as absent and never clear a value.

func (g *Genre) Complete() bool {
	return g.Name != ""
}

func (g *Genre) Merge(src *Genre) {
	if src.Name != "" {
		g.Name = src.Name
	}
}

func (a *Actor) Complete() bool {
	return a.FirstName != "" && a.LastName != "" && a.Nationality != "" && a.Image != "" && !a.Birthday.IsZero()
}

func (a *Actor) Merge(src *Actor) {
	if src.FirstName != "" {
		a.FirstName = src.FirstName
	}
	if src.LastName != "" {
		a.LastName = src.LastName
	}
	if src.Nationality != "" {
		a.Nationality = src.Nationality
	}
	if src.Image != "" {
		a.Image = src.Image
	}
	if !src.Birthday.IsZero() {
		a.Birthday = src.Birthday
	}
}

func (d *Director) Complete() bool {
	return d.FirstName != "" && d.LastName != "" && d.Nationality != "" && d.Image != "" && !d.Birthday.IsZero()
}

func (d *Director) Merge(src *Director) {
	if src.FirstName != "" {
		d.FirstName = src.FirstName
	}
	if src.LastName != "" {
		d.LastName = src.LastName
	}
	if src.Nationality != "" {
		d.Nationality = src.Nationality
	}
	if src.Image != "" {
		d.Image = src.Image
	}
	if !src.Birthday.IsZero() {
		d.Birthday = src.Birthday
	}
}

func (m *Movie) Complete() bool {
	return m.Name != "" && m.Image != "" && m.Synopsis != "" && m.ReleaseYear != 0
}

func (m *Movie) Merge(src *Movie) {
	if src.Name != "" {
		m.Name = src.Name
	}
	if src.Image != "" {
		m.Image = src.Image
	}
	if src.Synopsis != "" {
		m.Synopsis = src.Synopsis
	}
	if src.ReleaseYear != 0 {
		m.ReleaseYear = src.ReleaseYear
	}
}

func (g *Genre) PrimaryKey() uint {
	return g.ID
}

func (a *Actor) PrimaryKey() uint {
	return a.ID
}

func (d *Director) PrimaryKey() uint {
	return d.ID
}

func (m *Movie) PrimaryKey() uint {
	return m.ID
}

// FillRelations replaces nil relation slices with empty ones so an expanded
// movie always serialises its three relations as arrays.
func (m *Movie) FillRelations() {
	if m.Genres == nil {
		m.Genres = []Genre{}
	}
	if m.Actors == nil {
		m.Actors = []Actor{}
	}
	if m.Directors == nil {
		m.Directors = []Director{}
	}
}
