package switcher

// Stage records how far a switch run progressed. Runs move strictly
// forward through the stages; a failed run reports the last stage it
// reached, with no retries and no rollback of applied mutations.
type Stage string

const (
	StageInit        Stage = "init"
	StageLoaded      Stage = "loaded"
	StageListed      Stage = "listed"
	StageSelected    Stage = "selected"
	StageHomeSet     Stage = "home-set"
	StagePathUpdated Stage = "path-updated"
	StageLogged      Stage = "logged"
	StageDone        Stage = "done"
)
