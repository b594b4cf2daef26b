package gcode

// Profile defines a post-processor configuration so the emitted
// toolpath stays dialect-neutral: every command the generator writes
// comes from this table.
type Profile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Units       string `json:"units"` // "mm" or "inches"

	StartCode []string `json:"start_code"` // Commands at start of file
	EndCode   []string `json:"end_code"`   // Commands at end of file

	TravelMove string `json:"travel_move"` // G0 or equivalent
	FeedMove   string `json:"feed_move"`   // G1 or equivalent
	Retract    string `json:"retract"`     // Firmware retract command, empty to disable
	Unretract  string `json:"unretract"`   // Firmware unretract command

	CommentPrefix string `json:"comment_prefix"`
	CommentSuffix string `json:"comment_suffix"`
	DecimalPlaces int    `json:"decimal_places"`
}

// Built-in profiles.
var Profiles = []Profile{
	{
		Name:          "Generic",
		Description:   "Plain G0/G1 moves, works with most controllers",
		Units:         "mm",
		StartCode:     []string{"G90", "G21", "G17"},
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0"},
		TravelMove:    "G0",
		FeedMove:      "G1",
		Retract:       "G10",
		Unretract:     "G11",
		CommentPrefix: ";",
		CommentSuffix: "",
		DecimalPlaces: 3,
	},
	{
		Name:          "Marlin",
		Description:   "Marlin firmware with firmware retraction enabled",
		Units:         "mm",
		StartCode:     []string{"G90", "G21", "M83"},
		EndCode:       []string{"G0 Z[SafeZ]", "G28 X0 Y0", "M84"},
		TravelMove:    "G0",
		FeedMove:      "G1",
		Retract:       "G10",
		Unretract:     "G11",
		CommentPrefix: ";",
		CommentSuffix: "",
		DecimalPlaces: 3,
	},
	{
		Name:          "Klipper",
		Description:   "Klipper with configured firmware retraction",
		Units:         "mm",
		StartCode:     []string{"G90", "G21"},
		EndCode:       []string{"G0 Z[SafeZ]", "G28 X Y", "M84"},
		TravelMove:    "G0",
		FeedMove:      "G1",
		Retract:       "G10",
		Unretract:     "G11",
		CommentPrefix: ";",
		CommentSuffix: "",
		DecimalPlaces: 4,
	},
}

// GetProfile returns the named profile, falling back to the first
// built-in when the name is unknown.
func GetProfile(name string) Profile {
	for _, p := range Profiles {
		if p.Name == name {
			return p
		}
	}
	return Profiles[0]
}
