package ranges

import (
	"fmt"
)

type tableKey struct {
	size     TableSize
	scenario Scenario
	position Position
}

// Catalog holds every authored chart keyed by table size, scenario and position.
// A Catalog is never modified after construction.
type Catalog struct {
	tables map[tableKey]*Table
}

// Override replaces (or adds) one chart when deriving a catalog.
type Override struct {
	Size     TableSize
	Scenario Scenario
	Position Position
	Lists    Lists
}

var defaultCatalog = mustBuildDefault()

func mustBuildDefault() *Catalog {
	c, err := buildDefault()
	if err != nil {
		panic(fmt.Sprintf("ranges: authored catalog is invalid: %v", err))
	}
	return c
}

func buildDefault() (*Catalog, error) {
	c := &Catalog{tables: make(map[tableKey]*Table)}
	for _, size := range TableSizes() {
		for _, scenario := range Scenarios() {
			for _, a := range authoredCatalog[size][scenario] {
				if a.scenario != scenario {
					return nil, fmt.Errorf("%s %s: %s chart filed under %s", size, a.position, a.scenario, scenario)
				}
				if err := c.add(size, a.scenario, a.position, a.lists); err != nil {
					return nil, err
				}
			}
		}
	}
	return c, nil
}

func (c *Catalog) add(size TableSize, scenario Scenario, position Position, lists Lists) error {
	if !IsValidPosition(size, position) {
		return fmt.Errorf("%w: %s is not a seat at %s", ErrInvalidCombination, position, size)
	}
	key := tableKey{size, scenario, position}
	if _, dup := c.tables[key]; dup {
		return fmt.Errorf("%s %s %s authored twice", size, scenario, position)
	}
	t, err := Build(scenario, lists)
	if err != nil {
		return fmt.Errorf("%s %s %s: %w", size, scenario, position, err)
	}
	c.tables[key] = t
	return nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Validate rebuilds the authored catalog from scratch and reports the first
// authoring error, if any.
func Validate() error {
	_, err := buildDefault()
	return err
}

// NewCatalog derives a catalog from base with some charts replaced. base is
// left untouched. Overrides with empty lists remove the chart.
func NewCatalog(base *Catalog, overrides ...Override) (*Catalog, error) {
	c := &Catalog{tables: make(map[tableKey]*Table, len(base.tables)+len(overrides))}
	for k, t := range base.tables {
		c.tables[k] = t
	}

	for _, o := range overrides {
		if !o.Scenario.valid() {
			return nil, fmt.Errorf("%w: unknown scenario %d", ErrInvalidCombination, int(o.Scenario))
		}
		key := tableKey{o.Size, o.Scenario, o.Position}
		delete(c.tables, key)
		if o.Lists.Empty() {
			if !IsValidPosition(o.Size, o.Position) {
				return nil, fmt.Errorf("%w: %s is not a seat at %s", ErrInvalidCombination, o.Position, o.Size)
			}
			continue
		}
		if err := c.add(o.Size, o.Scenario, o.Position, o.Lists); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RangeFor returns the chart for a seat in a scenario at a table size.
//
// It returns an error wrapping ErrInvalidCombination when the seat does not
// exist at that table size (UTG+1 at 6-max), and one wrapping ErrNoRange when
// the seat exists but no chart was authored for the scenario.
func (c *Catalog) RangeFor(position Position, scenario Scenario, size TableSize) (*Table, error) {
	if _, ok := positionsByTable[size]; !ok {
		return nil, fmt.Errorf("%w: unknown table size %d", ErrInvalidCombination, int(size))
	}
	if !scenario.valid() {
		return nil, fmt.Errorf("%w: unknown scenario %d", ErrInvalidCombination, int(scenario))
	}
	if !IsValidPosition(size, position) {
		return nil, fmt.Errorf("%w: %s is not a seat at %s", ErrInvalidCombination, position, size)
	}

	t, ok := c.tables[tableKey{size, scenario, position}]
	if !ok {
		return nil, fmt.Errorf("%w: %s %s at %s", ErrNoRange, position, scenario, size)
	}
	return t, nil
}

// Has reports whether a chart exists for the combination.
func (c *Catalog) Has(position Position, scenario Scenario, size TableSize) bool {
	_, ok := c.tables[tableKey{size, scenario, position}]
	return ok
}

// Len returns the number of charts in the catalog.
func (c *Catalog) Len() int {
	return len(c.tables)
}

// Entry identifies one chart of a catalog.
type Entry struct {
	Size     TableSize
	Scenario Scenario
	Position Position
	Table    *Table
}

// Entries lists every chart in table size, scenario, seat order.
func (c *Catalog) Entries() []Entry {
	var out []Entry
	for _, size := range TableSizes() {
		for _, scenario := range Scenarios() {
			for _, position := range positionsByTable[size] {
				if t, ok := c.tables[tableKey{size, scenario, position}]; ok {
					out = append(out, Entry{Size: size, Scenario: scenario, Position: position, Table: t})
				}
			}
		}
	}
	return out
}

// RangeFor looks a chart up in the built-in catalog.
func RangeFor(position Position, scenario Scenario, size TableSize) (*Table, error) {
	return defaultCatalog.RangeFor(position, scenario, size)
}
