package model

import (
	"strconv"
	"strings"

	"github.com/markup-chain-poc/server/pkg/money"
)

// Job is the unit of work carried through the markup pipeline.
// A Job is owned by the invocation that created it and must not be shared
// between concurrent runs.
type Job struct {
	OriginalPrice money.Money // as submitted; display only
	BasePrice     money.Money // original + flat markup, set once by the flat stage
	Price         money.Money // running marked-up price
	Category      Category
	Headcount     int
}

// NewJob parses price and builds a job ready for the pipeline.
func NewJob(price string, headcount int, category Category) (*Job, error) {
	p, err := money.Parse(price)
	if err != nil {
		return nil, err
	}
	return &Job{
		OriginalPrice: p,
		BasePrice:     p,
		Price:         p,
		Category:      category,
		Headcount:     headcount,
	}, nil
}

func (j *Job) String() string {
	var b strings.Builder
	b.WriteString("Job{Category: ")
	b.WriteString(j.Category.String())
	b.WriteString(", Price: ")
	b.WriteString(j.OriginalPrice.String())
	b.WriteString(", People: ")
	b.WriteString(strconv.Itoa(j.Headcount))
	b.WriteString(", MarkedUpPrice: ")
	b.WriteString(j.Price.String())
	b.WriteString("}")
	return b.String()
}
