package asset

import (
	"sync"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Handle is an opaque reference to a loaded sprite
// The zero Handle refers to nothing
type Handle uint32

// IsZero reports whether h refers to nothing
func (h Handle) IsZero() bool {
	return h == 0
}

// Sprite is the visual description behind a Handle
type Sprite struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
}

// Server loads sprite sheets and hands out handles by sprite name
// Safe for concurrent use: the renderer resolves handles while setup may still load
type Server struct {
	mu      sync.RWMutex
	sprites []Sprite // index = handle - 1
	byName  map[string]Handle
	log     zerolog.Logger
}

// NewServer creates an empty asset server
func NewServer(log zerolog.Logger) *Server {
	return &Server{
		byName: make(map[string]Handle),
		log:    log.With().Str("component", "asset").Logger(),
	}
}

// NewDefaultServer creates a server preloaded with DefaultSpriteSheet
func NewDefaultServer(log zerolog.Logger) (*Server, error) {
	s := NewServer(log)
	if err := s.LoadSheet([]byte(DefaultSpriteSheet)); err != nil {
		return nil, eris.Wrap(err, "failed to load default sprite sheet")
	}
	return s, nil
}

// LoadSheet parses a YAML sprite list and registers every entry
// A sprite that reuses an existing name replaces it under the same handle
func (s *Server) LoadSheet(data []byte) error {
	var sheet []Sprite
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return eris.Wrap(err, "failed to parse sprite sheet")
	}

	for i, sp := range sheet {
		if sp.Name == "" {
			return eris.Errorf("sprite %d has no name", i)
		}
		if sp.Width <= 0 || sp.Height <= 0 {
			return eris.Errorf("sprite %q has non-positive size %gx%g", sp.Name, sp.Width, sp.Height)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sp := range sheet {
		if h, ok := s.byName[sp.Name]; ok {
			s.sprites[h-1] = sp
			continue
		}
		s.sprites = append(s.sprites, sp)
		s.byName[sp.Name] = Handle(len(s.sprites))
	}
	s.log.Debug().Int("sprites", len(sheet)).Msg("sprite sheet loaded")
	return nil
}

// Load resolves a sprite name to its handle
func (s *Server) Load(name string) (Handle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.byName[name]
	if !ok {
		return 0, eris.Errorf("sprite %q not found", name)
	}
	return h, nil
}

// LoadAll resolves several names in order, stopping at the first missing one
func (s *Server) LoadAll(names ...string) ([]Handle, error) {
	handles := make([]Handle, 0, len(names))
	for _, name := range names {
		h, err := s.Load(name)
		if err != nil {
			return nil, eris.Wrap(err, "failed to load asset set")
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// Get returns the sprite behind h
func (s *Server) Get(h Handle) (Sprite, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if h == 0 || int(h) > len(s.sprites) {
		return Sprite{}, false
	}
	return s.sprites[h-1], true
}

// Size returns the world-unit size of the sprite behind h
func (s *Server) Size(h Handle) (width, height float64, ok bool) {
	sp, ok := s.Get(h)
	if !ok {
		return 0, 0, false
	}
	return sp.Width, sp.Height, true
}
