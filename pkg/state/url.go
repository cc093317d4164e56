package state

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/matst80/slask-refine/pkg/types"
)

var decoder = schema.NewDecoder()
var encoder = schema.NewEncoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// stateQuery is the flat wire form of a Query. Every entry is
// "attribute:value", numeric entries are "attribute:operator:value" and
// excluded values carry a "!" prefix inside the str key.
type stateQuery struct {
	Facet        []string `schema:"str"`
	Disjunctive  []string `schema:"dstr"`
	Hierarchical []string `schema:"h"`
	Numeric      []string `schema:"num"`
	Tag          []string `schema:"tag"`
}

// Values encodes the state into URL query values.
func (q Query) Values() url.Values {
	sq := stateQuery{}
	for _, r := range q.Facet {
		sq.Facet = append(sq.Facet, r.Attribute+":"+r.Name)
	}
	for _, r := range q.Exclude {
		sq.Facet = append(sq.Facet, r.Attribute+":!"+r.Name)
	}
	for _, r := range q.Disjunctive {
		sq.Disjunctive = append(sq.Disjunctive, r.Attribute+":"+r.Name)
	}
	for _, r := range q.Hierarchical {
		sq.Hierarchical = append(sq.Hierarchical, r.Attribute+":"+r.Name)
	}
	for _, r := range q.Numeric {
		sq.Numeric = append(sq.Numeric, r.Attribute+":"+r.Operator+":"+formatNumber(r.Value))
	}
	sq.Tag = append(sq.Tag, q.Tags...)

	values := url.Values{}
	if err := encoder.Encode(&sq, values); err != nil {
		return url.Values{}
	}
	for key, entries := range values {
		kept := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry != "" {
				kept = append(kept, entry)
			}
		}
		if len(kept) == 0 {
			delete(values, key)
		} else {
			values[key] = kept
		}
	}
	return values
}

// ParseQuery decodes URL query values back into a Query. Malformed
// entries are skipped.
func ParseQuery(values url.Values) (Query, error) {
	sq := stateQuery{}
	if err := decoder.Decode(&sq, values); err != nil {
		return Query{}, err
	}

	q := Query{}
	for _, v := range sq.Facet {
		attribute, name, ok := splitEntry(v)
		if !ok {
			continue
		}
		if excluded, found := strings.CutPrefix(name, "!"); found {
			q.Exclude = append(q.Exclude, ValueRefinement{Attribute: attribute, Name: excluded})
		} else {
			q.Facet = append(q.Facet, ValueRefinement{Attribute: attribute, Name: name})
		}
	}
	for _, v := range sq.Disjunctive {
		if attribute, name, ok := splitEntry(v); ok {
			q.Disjunctive = append(q.Disjunctive, ValueRefinement{Attribute: attribute, Name: name})
		}
	}
	for _, v := range sq.Hierarchical {
		if attribute, name, ok := splitEntry(v); ok {
			q.Hierarchical = append(q.Hierarchical, ValueRefinement{Attribute: attribute, Name: name})
		}
	}
	for _, v := range sq.Numeric {
		parts := strings.SplitN(v, ":", 3)
		if len(parts) != 3 {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			continue
		}
		q.Numeric = append(q.Numeric, NumericRefinement{
			Attribute: strings.TrimSpace(parts[0]),
			Operator:  strings.TrimSpace(parts[1]),
			Value:     value,
		})
	}
	for _, tag := range sq.Tag {
		if tag != "" {
			q.Tags = append(q.Tags, tag)
		}
	}
	return q, nil
}

func splitEntry(v string) (string, string, bool) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	attribute := strings.TrimSpace(parts[0])
	name := strings.TrimSpace(parts[1])
	if attribute == "" || name == "" {
		return "", "", false
	}
	return attribute, name, true
}

// URLFor returns a CreateURL rooted at base. Foreign State
// implementations are flattened through FromRefinements first.
func URLFor(base string) types.CreateURL {
	return func(st types.State) string {
		q, ok := st.(Query)
		if !ok {
			q = FromRefinements(st.Refinements())
		}
		values := q.Values()
		if len(values) == 0 {
			return base
		}
		return base + "?" + values.Encode()
	}
}
