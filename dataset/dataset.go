// Package dataset loads labeled sentiment examples from delimited text
// and partitions them into reproducible train/test splits.
package dataset

import (
	"encoding/binary"
	"encoding/csv"
	"hash/fnv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sandeep-multani/SentimentAnalysisML/pipeline"
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
)

// LoadOptions controls parsing of a delimited example file.
type LoadOptions struct {
	// Delimiter separates the text and label columns. Zero selects tab.
	Delimiter rune
}

// Load reads labeled examples from r. Each record has two columns, text
// then label, with no header row. Labels are parsed with
// strconv.ParseBool, so "true"/"false" and "1"/"0" both work.
func Load(r io.Reader, opts LoadOptions) ([]pipeline.Example, error) {
	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = '\t'
	}

	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = 2
	reader.LazyQuotes = true

	var examples []pipeline.Example
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading example record at line %d", line)
		}
		label, err := strconv.ParseBool(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, errors.NewValueError("dataset.Load",
				"invalid label "+strconv.Quote(record[1])+" at line "+strconv.Itoa(line))
		}
		examples = append(examples, pipeline.Example{Text: record[0], Label: label})
	}
	if len(examples) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "dataset.Load")
	}
	return examples, nil
}

// LoadFile loads examples from the named file.
func LoadFile(path string, opts LoadOptions) ([]pipeline.Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening dataset %s", path)
	}
	defer f.Close()
	return Load(f, opts)
}

// Split partitions examples into train and test sets. The split is
// content-stable: each example is routed by a hash of its text mixed with
// the seed, so the partition is reproducible and does not depend on input
// order. Examples with identical text always land on the same side.
func Split(examples []pipeline.Example, testFraction float64, seed uint64) (train, test []pipeline.Example, err error) {
	if testFraction < 0 || testFraction > 1 {
		return nil, nil, errors.NewValueError("dataset.Split",
			"test fraction must be in [0, 1], got "+strconv.FormatFloat(testFraction, 'g', -1, 64))
	}

	for _, ex := range examples {
		if routeFraction(ex.Text, seed) < testFraction {
			test = append(test, ex)
		} else {
			train = append(train, ex)
		}
	}
	return train, test, nil
}

// routeFraction maps a text and seed to a uniform value in [0, 1).
func routeFraction(text string, seed uint64) float64 {
	h := fnv.New64a()
	var seedBytes [8]byte
	binary.LittleEndian.PutUint64(seedBytes[:], seed)
	h.Write(seedBytes[:])
	io.WriteString(h, text)
	// Top 53 bits so the quotient is exactly representable.
	return float64(h.Sum64()>>11) / float64(1<<53)
}
