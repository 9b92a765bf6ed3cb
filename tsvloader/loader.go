// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsvloader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JCVenterInstitute/flowgate-gating/gate"
	"github.com/JCVenterInstitute/flowgate-gating/gatetree"
	"github.com/JCVenterInstitute/flowgate-gating/gerr"
	"github.com/JCVenterInstitute/flowgate-gating/transform"
	"github.com/c2h5oh/datasize"
)

// numRequiredColumns is the fixed legacy-TSV row width, not counting the
// optional trailing gate-name column (spec.md 4.7).
const numRequiredColumns = 11

// rowsHint sizes the loader's preallocated row-data vectors; each row's 11
// integer columns are held in a fixed-size array (parseRow), so no
// separate column hint is needed.
const rowsHint = 30

// Loader parses the legacy TSV gate format (spec.md 4.7) into a
// gatetree.GateTrees of Rectangle gates.
type Loader struct {
	paramNames []string
}

// Option customizes a Loader.
type Option func(*Loader)

// WithParameterNames supplies an ordered parameter-name list so that
// dimension names reflect real channel names instead of a bare
// zero-based index string.
func WithParameterNames(names []string) Option {
	return func(l *Loader) { l.paramNames = append([]string(nil), names...) }
}

// New constructs a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type rawRow struct {
	gateNum, xIdx, yIdx                   int
	xMin, xMax, yMin, yMax                int
	parentNum, gateType                   int
	debugEnable, multipassEnable          int
	name                                  string
}

// Load parses path, returning the resulting gate trees and a file log of
// diagnostics. The file log is returned even on error (spec.md 4.7, 7):
// callers that only check the error still lose the detail, so read the
// log whenever an error is possible.
func (l *Loader) Load(path string) (*gatetree.GateTrees, *FileLog, error) {
	log := &FileLog{}

	f, err := os.Open(path)
	if err != nil {
		return nil, log, gerr.Wrap(gerr.SystemIO, "tsvloader.Load", err)
	}
	defer f.Close()

	rows := make([]rawRow, 0, rowsHint)
	lr := newLineReader(f)
	lineNo := 0
	sawAnyByte := false

	for {
		lineBytes, ok, rerr := lr.readLine()
		if !ok {
			break
		}
		sawAnyByte = true
		lineNo++
		line := string(lineBytes)
		if strings.TrimSpace(line) != "" {
			row, perr := parseRow(line, lineNo)
			if perr != nil {
				log.Append("error", perr.Error())
				return nil, log, gerr.New(gerr.Malformed, "tsvloader.Load", perr.Error())
			}
			if row.gateType == 2 {
				msg := fmt.Sprintf("The number %d gate uses a fan-shaped gate type that is not supported.", row.gateNum)
				log.Append("error", msg)
				return nil, log, gerr.New(gerr.UnsupportedFeature, "tsvloader.Load", msg)
			}
			if row.debugEnable != 0 {
				log.Append("warning", fmt.Sprintf("line %d: debug-enable is set and is ignored by this loader", lineNo))
			}
			if row.multipassEnable != 0 {
				log.Append("warning", fmt.Sprintf("line %d: multipass-enable is set and is ignored by this loader", lineNo))
			}
			rows = append(rows, row)
		}
		if rerr == io.EOF {
			break
		}
	}

	if !sawAnyByte {
		msg := "input file is empty"
		log.Append("error", msg)
		return nil, log, gerr.New(gerr.Truncated, "tsvloader.Load", msg)
	}

	log.Append("warning", "legacy TSV gate format: 0..200 column ranges map to [0,1] by dividing by 200, and every dimension gets a default Logicle transform; treat this mapping as a loader heuristic, not a stable cross-loader contract")
	if len(l.paramNames) == 0 {
		log.Append("warning", "no parameter name list supplied: dimension names default to zero-based parameter index strings")
	}
	log.Append("info", fmt.Sprintf("line buffer grew to %s", datasize.ByteSize(cap(lr.buf)).HumanReadable()))

	gates := make(map[int]*gate.Gate, rowsHint)
	parentOf := make(map[int]int, rowsHint)
	order := make([]int, 0, rowsHint)

	for _, row := range rows {
		if row.gateNum < 1 {
			msg := fmt.Sprintf("gate number must be >= 1, got %d", row.gateNum)
			log.Append("error", msg)
			return nil, log, gerr.New(gerr.Malformed, "tsvloader.Load", msg)
		}
		if _, dup := gates[row.gateNum]; dup {
			msg := fmt.Sprintf("duplicate gate number %d", row.gateNum)
			log.Append("error", msg)
			return nil, log, gerr.New(gerr.Malformed, "tsvloader.Load", msg)
		}

		g, gerr2 := buildRectangle(row, l.paramNames)
		if gerr2 != nil {
			log.Append("error", gerr2.Error())
			return nil, log, gerr2
		}
		gates[row.gateNum] = g
		parentOf[row.gateNum] = row.parentNum
		order = append(order, row.gateNum)
	}

	for _, num := range order {
		p := parentOf[num]
		if p == 0 {
			continue
		}
		parent, ok := gates[p]
		if !ok {
			msg := fmt.Sprintf("gate %d declares parent %d, which does not exist", num, p)
			log.Append("error", msg)
			return nil, log, gerr.New(gerr.Malformed, "tsvloader.Load", msg)
		}
		if err := parent.AppendChild(gates[num]); err != nil {
			log.Append("error", err.Error())
			return nil, log, err
		}
	}

	trees := gatetree.New()
	for _, num := range order {
		if parentOf[num] != 0 {
			continue
		}
		if err := trees.AppendTree(gates[num]); err != nil {
			log.Append("error", err.Error())
			return nil, log, err
		}
	}
	return trees, log, nil
}

func parseRow(line string, lineNo int) (rawRow, error) {
	cols := strings.Split(line, "\t")
	if len(cols) < numRequiredColumns {
		return rawRow{}, fmt.Errorf("line %d: expected at least %d tab-separated columns, got %d", lineNo, numRequiredColumns, len(cols))
	}

	var ints [numRequiredColumns]int
	for i := 0; i < numRequiredColumns; i++ {
		v, ok := scanDigits(cols[i])
		if !ok {
			return rawRow{}, fmt.Errorf("line %d: column %d must be a non-negative integer, got %q", lineNo, i, cols[i])
		}
		ints[i] = v
	}

	row := rawRow{
		gateNum:         ints[0],
		xIdx:            ints[1],
		yIdx:            ints[2],
		xMin:            ints[3],
		xMax:            ints[4],
		yMin:            ints[5],
		yMax:            ints[6],
		parentNum:       ints[7],
		gateType:        ints[8],
		debugEnable:     ints[9],
		multipassEnable: ints[10],
	}
	if len(cols) > numRequiredColumns {
		row.name = cols[numRequiredColumns]
	}
	if row.xIdx < 1 {
		return rawRow{}, fmt.Errorf("line %d: X parameter index must be >= 1, got %d", lineNo, row.xIdx)
	}
	if row.yIdx < 1 {
		return rawRow{}, fmt.Errorf("line %d: Y parameter index must be >= 1, got %d", lineNo, row.yIdx)
	}
	if row.gateType != 0 && row.gateType != 1 && row.gateType != 2 {
		return rawRow{}, fmt.Errorf("line %d: gate type must be 0, 1, or 2, got %d", lineNo, row.gateType)
	}
	return row, nil
}

func buildRectangle(row rawRow, names []string) (*gate.Gate, error) {
	xName := dimName(row.xIdx, names)
	yName := dimName(row.yIdx, names)
	g, err := gate.NewRectangle(
		[]string{xName, yName},
		[]float64{float64(row.xMin) / 200.0, float64(row.yMin) / 200.0},
		[]float64{float64(row.xMax) / 200.0, float64(row.yMax) / 200.0},
	)
	if err != nil {
		return nil, err
	}
	g.SetName(row.name)

	method := gate.EventValue
	if row.gateType == 0 {
		method = gate.DafiClusterCentroid
	}
	g.SetGatingMethod(method)

	for dim := 0; dim < 2; dim++ {
		tr, err := transform.NewLogicleDefault()
		if err != nil {
			return nil, err
		}
		if err := g.SetDimensionParameterTransform(dim, tr); err != nil {
			return nil, err
		}
	}
	return g, nil
}
