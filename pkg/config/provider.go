package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	IsReadOnly() bool
	Close() error
}

// Ephemeris model names accepted in ConfigData.Ephemeris
const (
	EphemerisMeeus       = "meeus"
	EphemerisApproximate = "approximate"
)

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Location  LocationData   `json:"location" yaml:"location"`
	Ephemeris string         `json:"ephemeris,omitempty" yaml:"ephemeris,omitempty"`
	Calendars []CalendarData `json:"calendars" yaml:"calendars"`
	Scenarios []ScenarioData `json:"scenarios" yaml:"scenarios"`
	Server    ServerData     `json:"server,omitempty" yaml:"server,omitempty"`
}

// LocationData holds the fixed observer
type LocationData struct {
	Name      string  `json:"name" yaml:"name"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Horizon   string  `json:"horizon,omitempty" yaml:"horizon,omitempty"` // sexagesimal degrees, e.g. "-0:34"
	Pressure  float64 `json:"pressure" yaml:"pressure"`                   // mbar
	TimeZone  string  `json:"timezone" yaml:"timezone"`
}

// CalendarData holds one school year. Dates are YYYY-MM-DD literals.
type CalendarData struct {
	Name     string   `json:"name" yaml:"name"`
	Start    string   `json:"start" yaml:"start"`
	End      string   `json:"end" yaml:"end"`
	Holidays []string `json:"holidays,omitempty" yaml:"holidays,omitempty"`
}

// ScenarioData pairs a calendar with a first-bell time (H:MM or H:MM:SS)
type ScenarioData struct {
	Label    string `json:"label" yaml:"label"`
	Calendar string `json:"calendar" yaml:"calendar"`
	Bell     string `json:"bell" yaml:"bell"`
}

// ServerData configures the optional HTTP API
type ServerData struct {
	ListenAddr string `json:"listen_addr,omitempty" yaml:"listen_addr,omitempty"`
	Port       int    `json:"port,omitempty" yaml:"port,omitempty"`
}
