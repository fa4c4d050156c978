package species

// Densities below this are treated as zero.
const MinimumDensity = 1.0e-3 // [m^-3]

// membership records that a reaction consumes or produces the species,
// with the number of repeats among its reactants or products.
type membership struct {
	reaction   int
	multiplier int
}

// Species holds one species' state and its membership in the source and
// loss sides of the balance equations.
type Species struct {
	formula string
	density float64 // [m^-3]
	loss    float64 // [m^-3 s^-1]
	source  float64 // [m^-3 s^-1]

	sources []membership
	losses  []membership
}

func New(index int) Species {
	return Species{formula: Formula(index)}
}

func (s *Species) Formula() string {
	return s.formula
}

// SetDensity floors values below MinimumDensity to zero.
func (s *Species) SetDensity(density float64) {
	if density < MinimumDensity {
		s.density = 0.
	} else {
		s.density = density
	}
}

func (s *Species) Density() float64 {
	return s.density
}

func (s *Species) SetLoss(loss float64) {
	s.loss = loss
}

func (s *Species) Loss() float64 {
	return s.loss
}

func (s *Species) SetSource(source float64) {
	s.source = source
}

func (s *Species) Source() float64 {
	return s.source
}

func (s *Species) AddSource(reaction, multiplier int) {
	s.sources = append(s.sources, membership{reaction, multiplier})
}

func (s *Species) AddLoss(reaction, multiplier int) {
	s.losses = append(s.losses, membership{reaction, multiplier})
}

func (s *Species) NumSources() int {
	return len(s.sources)
}

func (s *Species) NumLosses() int {
	return len(s.losses)
}

// SourceReaction returns the h-th (1-based) source reaction index and its
// repeat multiplier.
func (s *Species) SourceReaction(h int) (reaction, multiplier int) {
	m := s.sources[h-1]
	return m.reaction, m.multiplier
}

// LossReaction returns the h-th (1-based) loss reaction index and its
// repeat multiplier.
func (s *Species) LossReaction(h int) (reaction, multiplier int) {
	m := s.losses[h-1]
	return m.reaction, m.multiplier
}

// ReduceLists cancels reactions that both produce and consume the species:
// a reaction appearing on both sides keeps only the net multiplier on the
// dominant side. Entries reduced to zero are dropped.
func (s *Species) ReduceLists() {
	for is := range s.sources {
		for il := range s.losses {
			if s.sources[is].reaction != s.losses[il].reaction {
				continue
			}
			sm, lm := s.sources[is].multiplier, s.losses[il].multiplier
			switch {
			case sm == lm:
				s.sources[is].multiplier = 0
				s.losses[il].multiplier = 0
			case sm > lm:
				s.sources[is].multiplier = sm - lm
				s.losses[il].multiplier = 0
			default:
				s.sources[is].multiplier = 0
				s.losses[il].multiplier = lm - sm
			}
		}
	}
	s.sources = dropZero(s.sources)
	s.losses = dropZero(s.losses)
}

func dropZero(list []membership) []membership {
	kept := list[:0]
	for _, m := range list {
		if m.multiplier > 0 {
			kept = append(kept, m)
		}
	}
	return kept
}
