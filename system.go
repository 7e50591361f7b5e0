package queries

import "time"

// QuerySystem owns at most one compiled query on behalf of a user System. The
// scheduler drives it through a fixed sequence: configure once, then run every tick.
type QuerySystem struct {
	name           string
	system         System
	storage        Storage
	query          *CompiledQuery
	enabled        bool
	skipValidation bool

	// first failed terminal call of the current configure
	bindErr error
}

func newQuerySystem(name string, system System, storage Storage) *QuerySystem {
	return &QuerySystem{
		name:    name,
		system:  system,
		storage: storage,
		enabled: true,
	}
}

func (s *QuerySystem) Name() string {
	return s.name
}

func (s *QuerySystem) Enabled() bool {
	return s.enabled
}

// Query returns the compiled query, or nil if the system has not bound one.
func (s *QuerySystem) Query() *CompiledQuery {
	return s.query
}

// CreateQueryBuilder returns a builder whose terminal call binds to this system.
// Only one terminal call may succeed per system.
func (s *QuerySystem) CreateQueryBuilder() *QueryBuilder {
	return newQueryBuilder(s.storage, s)
}

// configure runs the user hook. A failed terminal call fails the system even when
// the hook drops the error.
func (s *QuerySystem) configure() error {
	s.bindErr = nil
	err := s.system.Configure(s.CreateQueryBuilder())
	if err == nil && s.bindErr != nil {
		err = s.bindErr
	}
	if err != nil {
		s.query = nil
		return err
	}
	return nil
}

func (s *QuerySystem) failBind(err error) error {
	if s.bindErr == nil {
		s.bindErr = err
	}
	return err
}

func (s *QuerySystem) tick(dt time.Duration) error {
	if t, ok := s.system.(Ticker); ok {
		t.Tick(dt)
	}
	if s.query == nil {
		return nil
	}
	return s.query.Run()
}
