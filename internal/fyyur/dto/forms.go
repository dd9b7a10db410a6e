package dto

// Choice lists served by the create-form endpoints. The presentation layer
// renders these into selects; validation of membership happens client side,
// same as the original forms.

var GenreChoices = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Other",
}

var StateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

type FormChoicesResponse struct {
	Genres []string `json:"genres"`
	States []string `json:"states"`
}

func NewFormChoices() FormChoicesResponse {
	return FormChoicesResponse{Genres: GenreChoices, States: StateChoices}
}

type IDName struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ShowFormResponse lists the venues and artists a new show can reference.
type ShowFormResponse struct {
	Venues  []IDName `json:"venues"`
	Artists []IDName `json:"artists"`
}
