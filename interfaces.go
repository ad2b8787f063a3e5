package shopkit

// Injectable is implemented by components that declare the services they depend on.
// Dependencies is called once during initialization, before the component starts ticking.
type Injectable interface {
	// Dependencies binds each dependency field with Required or Optional.
	Dependencies(in *Injector)
}
