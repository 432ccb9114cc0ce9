package configs

// Campaign holds lifecycle policy switches.
type Campaign struct {
	// RequireParticipation gates reward claims on a recorded participation
	// by the claiming account.
	RequireParticipation bool `env:"REQUIRE_PARTICIPATION" envDefault:"false"`
}
