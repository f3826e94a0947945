package grid

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/model"
	"github.com/jsphweid/chordgrid/util"
	"go.uber.org/zap"
)

// Model owns the song being edited. It is not safe for concurrent use;
// callers serialize access.
type Model struct {
	song      model.Song
	nameLimit int
	maxTotal  int
	newID     func() string
	onChange  func()
	logger    *zap.Logger
}

type Option func(*Model)

func WithNameLimit(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.nameLimit = n
		}
	}
}

// WithMaxMeasuresTotal caps how many measures a part may hold.
func WithMaxMeasuresTotal(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.maxTotal = n
		}
	}
}

func WithIDGenerator(f func() string) Option {
	return func(m *Model) { m.newID = f }
}

// WithOnChange registers f to run after every successful mutation.
func WithOnChange(f func()) Option {
	return func(m *Model) { m.onChange = f }
}

// OnChange replaces the hook registered with WithOnChange.
func (m *Model) OnChange(f func()) {
	m.onChange = f
}

func WithLogger(l *zap.Logger) Option {
	return func(m *Model) { m.logger = l }
}

func NewID() string {
	return uuid.New().String()
}

func New(opts ...Option) *Model {
	m := &Model{
		song:      model.Song{Tempo: constants.DefaultTempo, Parts: []model.Part{}},
		nameLimit: constants.DefaultNameLimit,
		maxTotal:  constants.MaxMeasuresTotal,
		newID:     NewID,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type PartDefaults struct {
	Name            string
	MeasuresTotal   int
	MeasuresPerLine int
}

func (m *Model) AddPart(d PartDefaults) model.Part {
	total := d.MeasuresTotal
	if total <= 0 || total > m.maxTotal {
		total = constants.DefaultMeasuresTotal
	}
	perLine := d.MeasuresPerLine
	if perLine == 0 {
		perLine = constants.DefaultMeasuresPerLine
	}
	name := d.Name
	if name == "" {
		name = constants.DefaultPartName
	}

	p := model.Part{
		ID:              m.newID(),
		Name:            m.partName(name),
		MeasuresTotal:   total,
		MeasuresPerLine: clampPerLine(perLine),
		Measures:        make([]model.Measure, total),
	}
	m.song.Parts = append(m.song.Parts, p)
	m.changed("add part", zap.String("id", p.ID), zap.String("name", p.Name))
	return p.Clone()
}

func (m *Model) DuplicatePart(id string) (model.Part, bool) {
	i := m.find(id)
	if i == -1 {
		return model.Part{}, false
	}

	c := m.song.Parts[i].Clone()
	c.ID = m.newID()
	m.song.Parts = append(m.song.Parts, c)
	m.changed("duplicate part", zap.String("from", id), zap.String("id", c.ID))
	return c.Clone(), true
}

func (m *Model) RemovePart(id string) {
	i := m.find(id)
	if i == -1 {
		return
	}
	m.song.Parts = append(m.song.Parts[:i], m.song.Parts[i+1:]...)
	m.changed("remove part", zap.String("id", id))
}

// ResizePart rejects a total outside [1, MaxMeasuresTotal] and leaves the
// part untouched. Measures at surviving indexes keep their content.
func (m *Model) ResizePart(id string, measuresTotal, measuresPerLine int) bool {
	i := m.find(id)
	if i == -1 || measuresTotal <= 0 || measuresTotal > m.maxTotal {
		return false
	}

	p := &m.song.Parts[i]
	measures := make([]model.Measure, measuresTotal)
	copy(measures, p.Measures)
	p.Measures = measures
	p.MeasuresTotal = measuresTotal
	p.MeasuresPerLine = clampPerLine(measuresPerLine)
	m.changed("resize part", zap.String("id", id),
		zap.Int("measures_total", p.MeasuresTotal),
		zap.Int("measures_per_line", p.MeasuresPerLine))
	return true
}

func (m *Model) RenamePart(id, name string) bool {
	i := m.find(id)
	if i == -1 {
		return false
	}
	m.song.Parts[i].Name = m.partName(name)
	m.changed("rename part", zap.String("id", id), zap.String("name", m.song.Parts[i].Name))
	return true
}

func (m *Model) SetMeasure(partID string, index int, measure model.Measure) bool {
	i := m.find(partID)
	if i == -1 || index < 0 || index >= m.song.Parts[i].MeasuresTotal {
		return false
	}
	m.song.Parts[i].Measures[index] = measure
	m.changed("set measure", zap.String("id", partID), zap.Int("index", index))
	return true
}

func (m *Model) ClearMeasure(partID string, index int) bool {
	return m.SetMeasure(partID, index, model.Measure{})
}

func (m *Model) SetHeader(title string, tempo int) {
	m.song.Title = title
	m.song.Tempo = tempo
	m.changed("set header", zap.String("title", title), zap.Int("tempo", tempo))
}

func (m *Model) Part(id string) (model.Part, bool) {
	i := m.find(id)
	if i == -1 {
		return model.Part{}, false
	}
	return m.song.Parts[i].Clone(), true
}

func (m *Model) Measure(partID string, index int) (model.Measure, bool) {
	i := m.find(partID)
	if i == -1 || index < 0 || index >= m.song.Parts[i].MeasuresTotal {
		return model.Measure{}, false
	}
	return m.song.Parts[i].Measures[index], true
}

func (m *Model) MaxMeasuresTotal() int {
	return m.maxTotal
}

func (m *Model) PartCount() int {
	return len(m.song.Parts)
}

// Song returns a copy that shares no storage with the model.
func (m *Model) Song() model.Song {
	return m.song.Clone()
}

func (m *Model) find(id string) int {
	for i, p := range m.song.Parts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) partName(name string) string {
	return util.TruncateRunes(strings.ToUpper(name), m.nameLimit)
}

func (m *Model) changed(op string, fields ...zap.Field) {
	m.logger.Debug(op, fields...)
	if m.onChange != nil {
		m.onChange()
	}
}

func clampPerLine(n int) int {
	return util.Clamp(n, constants.MinMeasuresPerLine, constants.MaxMeasuresPerLine)
}
