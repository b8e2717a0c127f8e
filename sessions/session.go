package sessions

// Session is the per-client authentication state carried in the signed
// cookie. The zero value is an anonymous session.
//
// AdminAuthed is only meaningful while SiteAuthed is true: the access
// gate checks site access first, so a forged admin-only flag grants
// nothing.
type Session struct {
	SiteAuthed  bool `json:"siteAuthed"`
	AdminAuthed bool `json:"adminAuthed"`
}

// Reset clears both authentication flags.
func (s *Session) Reset() {
	s.SiteAuthed = false
	s.AdminAuthed = false
}
