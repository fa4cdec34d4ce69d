package audio

import (
	"log"

	"github.com/lixenwraith/trainers/service"
)

// Service wraps SoundManager as a service.Service
// A missing audio backend leaves the manager silent instead of failing startup
type Service struct {
	*SoundManager
	deps     []string
	disabled bool
}

// NewService creates the audio service; deps name services that must start first
func NewService(cfg Config, deps ...string) *Service {
	return &Service{SoundManager: NewSoundManager(cfg), deps: deps}
}

func (s *Service) Name() string { return "audio" }

func (s *Service) Dependencies() []string { return s.deps }

func (s *Service) Init() error { return nil }

// Start opens the speaker, degrading to silence on failure
func (s *Service) Start() error {
	if err := s.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		s.disabled = true
	}
	return nil
}

func (s *Service) Stop() error {
	s.Cleanup()
	return nil
}

// Disabled reports whether Start fell back to silence
func (s *Service) Disabled() bool { return s.disabled }

var _ service.Service = (*Service)(nil)
