package main

import (
	"github.com/rs/zerolog"

	"evbus/pkg/bus"
)

// ticker is the demo subscriber: it logs the integer payload of every tick
// event it receives.
type ticker struct {
	log zerolog.Logger
}

func (s *ticker) Handle(e *bus.Event) error {
	s.log.Info().Int("n", bus.Data[int](e)).Msg("tock")
	return nil
}
