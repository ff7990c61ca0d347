// Package proptable evaluates property sweeps over input grids and exchanges
// the results as Apache Arrow record batches, the column format downstream
// analysis stacks (pandas, polars, DuckDB) ingest directly.
package proptable

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/fluidkit/coolprop-go/pkg/coolprop"
	"github.com/fluidkit/coolprop-go/pkg/coolprop/logging"
)

// FromColumns builds an Arrow record from named float64 columns. All columns
// must have the same length. The caller releases the returned record.
func FromColumns(names []string, columns [][]float64) (arrow.Record, error) {
	if len(names) != len(columns) {
		return nil, fmt.Errorf("proptable: %d names for %d columns", len(names), len(columns))
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("proptable: no columns")
	}
	rows := len(columns[0])
	fields := make([]arrow.Field, len(names))
	for i, name := range names {
		if len(columns[i]) != rows {
			return nil, fmt.Errorf("proptable: column %q has %d rows, want %d", name, len(columns[i]), rows)
		}
		fields[i] = arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64}
	}
	schema := arrow.NewSchema(fields, nil)

	builder := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer builder.Release()
	for i, col := range columns {
		builder.Field(i).(*array.Float64Builder).AppendValues(col, nil)
	}
	return builder.NewRecord(), nil
}

// Sweep evaluates the requested output properties over a grid of input
// states and returns a record with the two input columns followed by one
// column per output. The state is updated in place and left at the last grid
// point.
func Sweep(ctx context.Context, state *coolprop.State, pair coolprop.InputPair,
	values1, values2 []float64, outputs []coolprop.Param, log logging.Logger) (arrow.Record, error) {
	if log == nil {
		log = logging.Nop()
	}
	if len(outputs) == 0 {
		return nil, fmt.Errorf("proptable: no output properties requested")
	}

	pairName := pair.String()
	inputNames, err := inputColumnNames(pairName)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, 2+len(outputs))
	columns := make([][]float64, 0, 2+len(outputs))
	names = append(names, inputNames[0], inputNames[1])
	columns = append(columns, values1, values2)

	for _, output := range outputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		col, err := state.UpdateAnd1Out(pair, values1, values2, output)
		if err != nil {
			return nil, fmt.Errorf("proptable: evaluate %s: %w", output, err)
		}
		log.Debug(ctx, "evaluated sweep column", "output", output.String(), "rows", len(col))
		names = append(names, output.String())
		columns = append(columns, col)
	}

	log.Info(ctx, "property sweep complete",
		"pair", pairName, "rows", len(values1), "outputs", len(outputs))
	return FromColumns(names, columns)
}

// inputColumnNames derives the two input column names from an input-pair
// token such as "PT_INPUTS" or "HmolarSmolar_INPUTS".
func inputColumnNames(pairToken string) ([2]string, error) {
	base, ok := strings.CutSuffix(pairToken, "_INPUTS")
	if !ok {
		return [2]string{}, fmt.Errorf("proptable: unrecognized input pair %q", pairToken)
	}
	if split, ok := splitPairToken(base); ok {
		return split, nil
	}
	return [2]string{base + "_1", base + "_2"}, nil
}

// pairTokenParts are the variable names that compose input-pair tokens,
// longest first so e.g. "Hmolar" wins over "H".
var pairTokenParts = []string{
	"Dmolar", "Dmass", "Hmolar", "Hmass", "Smolar", "Smass",
	"Umolar", "Umass", "P", "Q", "T",
}

func splitPairToken(base string) ([2]string, bool) {
	for _, first := range pairTokenParts {
		rest, ok := strings.CutPrefix(base, first)
		if !ok {
			continue
		}
		for _, second := range pairTokenParts {
			if rest == second {
				return [2]string{first, second}, true
			}
		}
	}
	return [2]string{}, false
}

// Write serializes a record to the Arrow IPC stream format.
func Write(w io.Writer, rec arrow.Record) error {
	writer := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()))
	if err := writer.Write(rec); err != nil {
		writer.Close()
		return fmt.Errorf("proptable: write record: %w", err)
	}
	return writer.Close()
}

// Read deserializes the first record of an Arrow IPC stream. The caller
// releases the returned record.
func Read(r io.Reader) (arrow.Record, error) {
	reader, err := ipc.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("proptable: open stream: %w", err)
	}
	defer reader.Release()
	if !reader.Next() {
		if err := reader.Err(); err != nil {
			return nil, fmt.Errorf("proptable: read record: %w", err)
		}
		return nil, fmt.Errorf("proptable: empty stream")
	}
	rec := reader.Record()
	rec.Retain()
	return rec, nil
}
