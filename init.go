// Repository initialization.
package promptflow

// InitResult reports what InitRepository did.
type InitResult struct {
	Root  string       `json:"root" yaml:"root"`
	Seeds []SeedResult `json:"seeds" yaml:"seeds"`
}

// InitRepository prepares a storage root: it resolves path the same way
// as a configured override (blank selects defaultRoot), creates both
// collections and seeds the starter templates. It is safe to run on an
// existing repository; nothing already there is overwritten.
func InitRepository(path string, defaultRoot func() (string, error)) (*InitResult, error) {
	s := New(Config{Storage: Path(path), DefaultRoot: defaultRoot})
	return s.Init()
}

// Init is InitRepository for the store's configured root.
func (s *Store) Init() (*InitResult, error) {
	root, err := s.Root()
	if err != nil {
		return nil, err
	}
	seeds, err := s.seed(CollectionPath(root, Templates))
	if err != nil {
		return nil, err
	}
	s.log.Info("promptflow: repository ready", "root", root, "starters", len(seeds))
	return &InitResult{Root: root, Seeds: seeds}, nil
}
