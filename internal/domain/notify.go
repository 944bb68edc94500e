package domain

// EntityCreatedListener is invoked with the name of a newly created Room
// or Event after a successful commit. Listeners are optional; the engine
// assumes nothing about its consumers and works with none registered.
type EntityCreatedListener func(name string)
