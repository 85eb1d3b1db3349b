package projector

type ResyncOutput struct {
	Upserted int
	Removed  int
}
