package cli

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Pure-Company/pureext"
	"github.com/Pure-Company/pureext/arrayext"
)

func newSmallestCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smallest [--count N] NUMBER...",
		Short: "Print the N smallest numbers in ascending order",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
	}
	cmd.Flags().IntP("count", "n", 0, "how many values to keep (default from config, 1)")

	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		nums, err := parseNumbers(args)
		if err != nil {
			return err
		}

		count := a.cfg.Defaults.Count
		if cmd.Flags().Changed("count") {
			count, _ = cmd.Flags().GetInt("count")
		}
		if count < 0 {
			return usageError("--count must not be negative, got %d", count)
		}

		smallest := arrayext.SmallestN(nums, count)
		return a.printer(cmd).print(smallest, func(w io.Writer) error {
			for _, n := range smallest {
				if _, err := fmt.Fprintln(w, formatNumber(n)); err != nil {
					return err
				}
			}
			return nil
		})
	})
	return cmd
}

func parseNumbers(args []string) ([]float64, error) {
	nums := make([]float64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, usageError("parse number %q: %w", arg, err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func newDistinctCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distinct VALUE...",
		Short: "Print each value once, in order of first occurrence",
		Args:  usageArgs(cobra.ArbitraryArgs),
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		return a.printer(cmd).lines(arrayext.Distinct(args))
	})
	return cmd
}

func newIndexCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index [--key FIELD] [FILE]",
		Short: "Index a JSON or YAML list of objects by a field",
		Long: `Reads a list of objects from FILE, or from stdin when FILE is omitted or "-",
and prints an object mapping each record's field value to the record.
When two records share a value the later one wins.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
	}
	cmd.Flags().StringP("key", "k", "", "record field to index by (default from config, id)")

	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		path := "-"
		if len(args) == 1 {
			path = args[0]
		}
		records, err := readRecords(cmd, path)
		if err != nil {
			return err
		}

		key, _ := cmd.Flags().GetString("key")
		if key == "" {
			key = a.cfg.Defaults.Key
		}

		index := arrayext.IndexBy(records, key)
		p := a.printer(cmd)
		return p.print(index, func(w io.Writer) error {
			keys := make([]string, 0, len(index))
			for k := range index {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if _, err := fmt.Fprintf(w, "%s %v\n", p.header(k), index[k]); err != nil {
					return err
				}
			}
			return nil
		})
	})
	return cmd
}

// readRecords decodes a YAML document holding a list of mappings. JSON input
// is accepted as YAML.
func readRecords(cmd *cobra.Command, path string) ([]map[string]any, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open records: %w", err)
		}
		defer f.Close()
		r = f
	}

	var records []map[string]any
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if err == io.EOF {
			return []map[string]any{}, nil
		}
		return nil, fmt.Errorf("decode records from %s: %w", path, err)
	}
	for i, r := range records {
		records[i] = stringKeys(r).(map[string]any)
	}
	return records, nil
}

// stringKeys rewrites nested mappings decoded with non-string keys, such as
// {1: 2}, into map[string]any so every record can be encoded as JSON.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, inner := range t {
			t[k] = stringKeys(inner)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, inner := range t {
			m[fmt.Sprint(k)] = stringKeys(inner)
		}
		return m
	case []any:
		for i, inner := range t {
			t[i] = stringKeys(inner)
		}
		return t
	default:
		return v
	}
}

func newShuffleCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shuffle [--seed S] VALUE...",
		Short: "Print the values in random order",
		Args:  usageArgs(cobra.ArbitraryArgs),
	}
	cmd.Flags().Uint64("seed", 0, "seed for a reproducible order")

	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		var shuffled []string
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			shuffled = arrayext.ShuffleWith(args, rand.New(rand.NewPCG(seed, seed)))
		} else {
			shuffled = arrayext.Shuffle(args)
		}
		return a.printer(cmd).lines(shuffled)
	})
	return cmd
}

type partitionResult struct {
	Matched []string `json:"matched" yaml:"matched"`
	Rest    []string `json:"rest" yaml:"rest"`
}

func newPartitionCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partition --pattern RE VALUE...",
		Short: "Split values by whether they match a regular expression",
		Args:  usageArgs(cobra.ArbitraryArgs),
	}
	cmd.Flags().StringP("pattern", "p", "", "regular expression values are tested against")
	cmd.Flags().Bool("invert", false, "put non-matching values first")
	cmd.MarkFlagRequired("pattern")

	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		pattern, _ := cmd.Flags().GetString("pattern")
		re, err := regexp.Compile(pattern)
		if err != nil {
			return usageError("compile pattern %q: %w", pattern, err)
		}

		pred := pureext.Predicate[string](re.MatchString)
		if invert, _ := cmd.Flags().GetBool("invert"); invert {
			pred = pred.Not()
		}

		matched, rest := arrayext.Partition(args, pred)
		result := partitionResult{Matched: matched, Rest: rest}
		p := a.printer(cmd)
		return p.print(result, func(w io.Writer) error {
			for _, group := range []struct {
				title  string
				values []string
			}{{"matched", matched}, {"rest", rest}} {
				if _, err := fmt.Fprintln(w, p.header(group.title)); err != nil {
					return err
				}
				for _, v := range group.values {
					if _, err := fmt.Fprintf(w, "  %s\n", v); err != nil {
						return err
					}
				}
			}
			return nil
		})
	})
	return cmd
}
