package config

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// listKeys accumulate across repeated lines instead of overwriting;
// every other recognised key overwrites with a logged warning on repeat.
var listKeys = map[string]bool{
	"structParams":          true,
	"attrParams":            true,
	"dyadicParams":          true,
	"attrInteractionParams": true,
}

// Load parses the config file at path, applying defaults for any field
// never set, then validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errf("cannot open %s: %v", path, err)
	}
	defer f.Close()
	return parse(f)
}

func parse(r io.Reader) (Config, error) {
	cfg := Default()
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, ok := splitKeyValue(line)
		if !ok {
			return cfg, errf("line %d: malformed line %q, expected keyword = value", lineNo, line)
		}

		if seen[key] && !listKeys[key] {
			slog.Warn("config: duplicate key overwrites previous value", "key", key, "line", lineNo)
		}
		seen[key] = true

		if err := applyKey(&cfg, key, value); err != nil {
			return cfg, err
		}
	}
	if err := scanner.Err(); err != nil {
		return cfg, errf("reading config: %v", err)
	}

	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		return line[:idx]
	}
	return line
}

func splitKeyValue(line string) (key, value string, ok bool) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

func applyKey(cfg *Config, key, value string) error {
	switch key {
	case "ACA_S":
		return setFloat(&cfg.ACA_S, key, value)
	case "ACA_EE":
		return setFloat(&cfg.ACA_EE, key, value)
	case "compC":
		return setFloat(&cfg.CompC, key, value)
	case "ifd_K":
		return setFloat(&cfg.IfdK, key, value)
	case "learningRate":
		return setFloat(&cfg.LearningRate, key, value)
	case "minTheta":
		return setFloat(&cfg.MinTheta, key, value)
	case "minThetaMean":
		return setFloat(&cfg.MinThetaMean, key, value)
	case "thetaSDThreshold":
		return setFloat(&cfg.ThetaSDThreshold, key, value)

	case "samplerSteps":
		return setUint(&cfg.SamplerM, key, value)
	case "Ssteps":
		return setUint(&cfg.Ssteps, key, value)
	case "EEsteps":
		return setUint(&cfg.EEsteps, key, value)
	case "EEinnerSteps":
		return setUint(&cfg.EEinner, key, value)

	case "outputAllSteps":
		return setBool(&cfg.OutputAllSteps, key, value)
	case "useIFDsampler":
		return setBool(&cfg.UseIFDSampler, key, value)
	case "outputSimulatedNetwork":
		return setBool(&cfg.OutputSimulatedNetwork, key, value)
	case "useConditionalEstimation":
		return setBool(&cfg.UseConditionalEstimation, key, value)
	case "citationERGM":
		return setBool(&cfg.CitationERGM, key, value)
	case "forbidReciprocity":
		return setBool(&cfg.ForbidReciprocity, key, value)
	case "allowLoops":
		return setBool(&cfg.AllowLoops, key, value)
	case "useBorisenkoUpdate":
		return setBool(&cfg.UseBorisenkoUpdate, key, value)

	case "arclist_filename":
		cfg.ArclistFilename = value
	case "binattr_filename":
		cfg.BinattrFilename = value
	case "catattr_filename":
		cfg.CatattrFilename = value
	case "contattr_filename":
		cfg.ContattrFilename = value
	case "setattr_filename":
		cfg.SetattrFilename = value
	case "theta_file_prefix":
		cfg.ThetaFilePrefix = value
	case "dzA_file_prefix":
		cfg.DzAFilePrefix = value
	case "sim_net_file_prefix":
		cfg.SimNetFilePrefix = value
	case "zone_filename":
		cfg.ZoneFilename = value
	case "term_filename":
		cfg.TermFilename = value

	case "structParams":
		cfg.StructParams = append(cfg.StructParams, value)
	case "attrParams":
		p, err := parseAttrParam(value)
		if err != nil {
			return err
		}
		cfg.AttrParams = append(cfg.AttrParams, p)
	case "dyadicParams":
		p, err := parseDyadicParam(value)
		if err != nil {
			return err
		}
		cfg.DyadicParams = append(cfg.DyadicParams, p)
	case "attrInteractionParams":
		p, err := parseInteractionParam(value)
		if err != nil {
			return err
		}
		cfg.AttrInteractionParams = append(cfg.AttrInteractionParams, p)

	default:
		return errf("unknown key %q", key)
	}
	return nil
}

func setFloat(dst *float64, key, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return errf("key %q: expected a number, got %q", key, value)
	}
	*dst = v
	return nil
}

func setUint(dst *uint, key, value string) error {
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return errf("key %q: expected a non-negative integer, got %q", key, value)
	}
	*dst = uint(v)
	return nil
}

func setBool(dst *bool, key, value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return errf("key %q: expected true/false, got %q", key, value)
	}
	*dst = v
	return nil
}

func parseAttrParam(value string) (AttrParam, error) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return AttrParam{}, errf("attrParams: expected \"FuncName AttrName\", got %q", value)
	}
	return AttrParam{FuncName: fields[0], AttrName: fields[1]}, nil
}

func parseDyadicParam(value string) (DyadicParam, error) {
	fields := strings.Fields(value)
	if len(fields) != 3 {
		return DyadicParam{}, errf("dyadicParams: expected \"FuncName AttrName1 AttrName2\", got %q", value)
	}
	return DyadicParam{FuncName: fields[0], AttrName1: fields[1], AttrName2: fields[2]}, nil
}

func parseInteractionParam(value string) (InteractionParam, error) {
	fields := strings.Fields(value)
	if len(fields) != 3 {
		return InteractionParam{}, errf("attrInteractionParams: expected \"FuncName AttrName1 AttrName2\", got %q", value)
	}
	return InteractionParam{FuncName: fields[0], AttrName1: fields[1], AttrName2: fields[2]}, nil
}
