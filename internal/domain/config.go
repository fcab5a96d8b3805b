package domain

// ConfigKey is the fixed document key for the config singleton. Addressing
// the singleton by key keeps the first toggle a single upsert instead of a
// find-then-branch.
const ConfigKey = "global"

const defaultLimitedEditionName = "Celestial Gaze"

// Config is the global site configuration controlling the limited edition
// product line.
type Config struct {
	ID                   string `bson:"_id,omitempty" json:"_id,omitempty"`
	LimitedEditionActive bool   `bson:"limited_edition_active" json:"limited_edition_active"`
	LimitedEditionName   string `bson:"limited_edition_name" json:"limited_edition_name"`
}

// DefaultConfig is what callers see before any config document exists.
func DefaultConfig() Config {
	return Config{
		LimitedEditionActive: false,
		LimitedEditionName:   defaultLimitedEditionName,
	}
}
