package bindgen

import (
	"fmt"
	"sort"
)

// fieldModel is one field of a generated event record.
type fieldModel struct {
	Name string
	Type string
}

// topicModel is one chainable filter method bound to an indexed event
// parameter's topic slot.
type topicModel struct {
	Method  string
	RawName string
	Slot    int
	Type    string
}

// filterModel is the view model for a non-anonymous event's filter
// builder type.
type filterModel struct {
	Name     string
	Accessor string
	Topics   []topicModel
}

// eventModel is the view model for one event: its record type, decode
// routine and, for non-anonymous events, its filter builder.
type eventModel struct {
	TypeName  string
	RawName   string
	Signature string
	TopicHex  string
	Anonymous bool
	Fields    []fieldModel
	Filter    *filterModel
}

// eventsModel is the full event section: records in name-sorted order
// plus the partition the decode dispatcher is built from.
type eventsModel struct {
	ContractType string
	UnionName    string
	ParseFunc    string
	Events       []eventModel

	// Standard and Anonymous are the name-sorted dispatcher
	// partitions. The descriptor's event collection is unordered;
	// sorting by event name keeps decoding deterministic, in
	// particular when several anonymous events are structurally
	// ambiguous.
	Standard  []eventModel
	Anonymous []eventModel
}

// buildEvents constructs the event section view model. A descriptor
// without events yields nil: no records, no union, no dispatcher.
func buildEvents(cx *Context, imp *imports) (*eventsModel, error) {
	if len(cx.descriptor.Events) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(cx.descriptor.Events))
	for name := range cx.descriptor.Events {
		names = append(names, name)
	}
	sort.Strings(names)

	model := &eventsModel{
		ContractType: cx.typeName,
		UnionName:    cx.typeName + "Event",
		ParseFunc:    "Parse" + cx.typeName + "Event",
	}

	for _, name := range names {
		event := cx.descriptor.Events[name]
		m, err := buildEvent(cx, &event, imp)
		if err != nil {
			return nil, err
		}
		model.Events = append(model.Events, m)
		if m.Anonymous {
			model.Anonymous = append(model.Anonymous, m)
		} else {
			model.Standard = append(model.Standard, m)
		}
	}

	if hasFilters(model) {
		imp.Time = true
		imp.Context = true
	}
	return model, nil
}

func hasFilters(model *eventsModel) bool {
	return len(model.Standard) > 0
}

func buildEvent(cx *Context, event *Event, imp *imports) (eventModel, error) {
	m := eventModel{
		TypeName:  cx.typeName + resolveName(event.RawName, 0, ScopeField),
		RawName:   event.RawName,
		Signature: event.Signature(),
		TopicHex:  event.Topic().Hex(),
		Anonymous: event.Anonymous,
	}

	taken := make(map[string]bool, len(event.Inputs))
	for i, in := range event.Inputs {
		goType, err := mapType(in.Type)
		if err != nil {
			return eventModel{}, err
		}
		imp.markType(goType)
		name := resolveName(in.Name, i, ScopeField)
		if taken[name] {
			name = resolveName("", i, ScopeField)
		}
		taken[name] = true
		m.Fields = append(m.Fields, fieldModel{
			Name: name,
			Type: goType,
		})
	}

	if !event.Anonymous {
		filter, err := buildFilter(cx, event, &m, imp)
		if err != nil {
			return eventModel{}, err
		}
		m.Filter = filter
	}
	return m, nil
}

// buildFilter derives the filter builder model for a non-anonymous
// event. Indexed parameters are numbered by the order they appear,
// 0-based; that index is the parameter's topic slot.
func buildFilter(cx *Context, event *Event, m *eventModel, imp *imports) (*filterModel, error) {
	filter := &filterModel{
		Name:     m.TypeName + "Filter",
		Accessor: "Filter" + resolveName(event.RawName, 0, ScopeMethod),
	}
	slot := 0
	// The builder's own configuration methods are not available as
	// topic method names.
	taken := map[string]bool{
		"FromBlock":    true,
		"ToBlock":      true,
		"PollInterval": true,
		"Stream":       true,
	}
	for _, in := range event.Inputs {
		if !in.Indexed {
			continue
		}
		goType, err := mapType(in.Type)
		if err != nil {
			return nil, err
		}
		imp.markType(goType)
		method := fmt.Sprintf("Topic%d", slot)
		if in.Name != "" {
			method = resolveName(in.Name, slot, ScopeMethod)
		}
		// A resolved name can repeat an earlier one or land on a
		// builder method ("from_block" resolves to FromBlock); such
		// names take the positional form.
		if taken[method] {
			method = fmt.Sprintf("Topic%d", slot)
		}
		taken[method] = true
		filter.Topics = append(filter.Topics, topicModel{
			Method:  method,
			RawName: in.Name,
			Slot:    slot,
			Type:    goType,
		})
		slot++
	}
	return filter, nil
}
