package plot

// RegisterBuiltins registers the templates that ship with the engine.
// Discovery may later overwrite any of them by registering under the
// same name.
func RegisterBuiltins(r *Registry) {
	r.Register("three_act", NewThreeActTemplate)
	r.Register("hero's_journey", NewHeroesJourneyTemplate)
	r.Register("save_the_cat", NewSaveTheCatTemplate)
}
