package main

import (
	"github.com/cristianoliveira/jobdeck/internal/feedback"
	"github.com/cristianoliveira/jobdeck/internal/storage"
)

// storeOpener opens the item store. Commands close the store when done.
type storeOpener func() (storage.Store, error)

var openStore storeOpener = storage.NewFromConfig

// messages receives the user-facing notices of every command.
var messages feedback.Handler = feedback.Console{}
