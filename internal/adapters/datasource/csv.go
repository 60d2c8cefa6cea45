package datasource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

const (
	colPlayerCode = "player_code"
	colName       = "player_name"
	colTeam       = "team_name"
	colSeason     = "season"
	colPitchRole  = "pitcher_role"
	colPosition   = "primary_position_name"
	colThrows     = "throws"
	colBats       = "bats"
)

// aliases maps accepted header spellings onto canonical column names.
var aliases = map[string]string{
	"batter_pcode":  colPlayerCode,
	"pitcher_pcode": colPlayerCode,
	"pcode":         colPlayerCode,
	"name":          colName,
	"team":          colTeam,
	"role_type":     colPitchRole,
	"position":      colPosition,
	"phand":         colThrows,
	"stand":         colBats,
}

var identity = map[string]bool{
	colPlayerCode: true,
	colName:       true,
	colTeam:       true,
	colSeason:     true,
	colPitchRole:  true,
	colPosition:   true,
}

func canonical(header string) string {
	h := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header, "\ufeff")))
	if c, ok := aliases[h]; ok {
		return c
	}
	return h
}

// IsMissing reports tokens that mean "no value".
func IsMissing(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", "na", "n/a", "nan", "null", "none", "-":
		return true
	default:
		return false
	}
}

// ParseValue parses a numeric cell. Missing tokens return ok=false with a nil
// error; anything else that is not a finite number is malformed.
func ParseValue(token string) (v float64, ok bool, err error) {
	if IsMissing(token) {
		return 0, false, nil
	}
	// "12.5%" reads as 12.5, the scale of percentage columns
	t := strings.ReplaceAll(strings.TrimSuffix(strings.TrimSpace(token), "%"), ",", "")
	v, err = strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse %q: %w", token, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, nil
	}
	return v, true, nil
}

func parseSeason(token string) (int, bool) {
	v, ok, err := ParseValue(token)
	if !ok || err != nil || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// ReadRecords parses a stat CSV with a header row into records of role.
// Rows without a player code or season are skipped; malformed numeric cells
// are treated as missing. Only a broken CSV stream is an error.
func ReadRecords(ctx context.Context, r io.Reader, role model.Role, log logger.Logger) ([]model.RawStatRecord, error) {
	if log == nil {
		log = logger.Nop()
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrUnreadable, err)
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = canonical(h)
	}

	var out []model.RawStatRecord
	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrUnreadable, line, err)
		}

		rec := model.RawStatRecord{Role: role, Values: make(map[string]float64, len(cols))}
		var seasonOK bool
		for i, cell := range row {
			if i >= len(cols) {
				break
			}
			col := cols[i]
			if identity[col] {
				switch col {
				case colPlayerCode:
					rec.PlayerCode = strings.TrimSpace(cell)
				case colName:
					rec.Name = strings.TrimSpace(cell)
				case colTeam:
					rec.Team = strings.TrimSpace(cell)
				case colSeason:
					rec.Season, seasonOK = parseSeason(cell)
				case colPitchRole:
					rec.BullpenRole = model.ParseBullpenRole(cell)
				case colPosition:
					rec.Position = strings.TrimSpace(cell)
				}
				continue
			}
			v, ok, perr := ParseValue(cell)
			if perr != nil {
				metrics.RecordMalformedValue(string(role), col)
				log.Debug(ctx, "malformed value treated as missing",
					logger.String("role", string(role)),
					logger.Int("line", line),
					logger.String("column", col),
					logger.Error(perr),
				)
				continue
			}
			if ok {
				rec.Values[col] = v
			}
		}

		if rec.PlayerCode == "" || !seasonOK {
			metrics.RecordRecordSkipped(string(role))
			log.Warn(ctx, "skipping row without player code or season",
				logger.String("role", string(role)),
				logger.Int("line", line),
			)
			continue
		}
		if role == model.RolePitcher && rec.BullpenRole == "" {
			rec.BullpenRole = model.BullpenUnknown
		}
		out = append(out, rec)
	}
	return out, nil
}

// ReadPlayers parses the identity/handedness lookup. Later rows for the same
// code overwrite earlier ones.
func ReadPlayers(r io.Reader) (map[string]model.PlayerInfo, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return map[string]model.PlayerInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrUnreadable, err)
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[canonical(h)] = i
	}
	get := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) || IsMissing(row[i]) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make(map[string]model.PlayerInfo)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
		}
		code := get(row, colPlayerCode)
		if code == "" {
			continue
		}
		out[code] = model.PlayerInfo{
			PlayerCode: code,
			Throws:     get(row, colThrows),
			Bats:       get(row, colBats),
		}
	}
	return out, nil
}
