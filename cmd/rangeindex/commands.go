package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/henderiw/rangeindex/pkg/interval"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/labels"
)

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find POINT...",
		Short: "Print the value of the range covering each point",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			idx, err := cfg.BuildIndex(interval.WithLogger(indexLogger()))
			if err != nil {
				return err
			}
			for _, arg := range args {
				point, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid point %q: %w", arg, err)
				}
				v, err := idx.Find(point)
				if errors.Is(err, interval.ErrPointNotFound) {
					fmt.Fprintf(cmd.OutOrStdout(), "%d: not found\n", point)
					continue
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d=%s\n", point, v)
			}
			return nil
		},
	}
}

func newIPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ip ADDR...",
		Short: "Print the value of the ip range holding each address",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			table, err := cfg.BuildIPTable(interval.WithLogger(indexLogger()))
			if err != nil {
				return err
			}
			for _, addr := range args {
				v, err := table.Get(addr)
				if errors.Is(err, interval.ErrPointNotFound) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not found\n", addr)
					continue
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", addr, v)
			}
			return nil
		},
	}
}

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select SELECTOR",
		Short: "List the ranges whose labels match a label selector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, err := labels.Parse(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			table, err := cfg.BuildRangeTable(interval.WithLogger(indexLogger()))
			if err != nil {
				return err
			}
			matches := table.GetByLabel(selector)
			keys := make([]string, 0, len(matches))
			for key := range matches {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", key, matches[key].String())
			}
			log.Debugf("%d of %d ranges match %q", len(matches), table.Count(), selector.String())
			return nil
		},
	}
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "List the stored ranges in ascending order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			idx, err := cfg.BuildIndex(interval.WithLogger(indexLogger()))
			if err != nil {
				return err
			}
			iter := idx.Iterate()
			for iter.Next() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", declared(idx, iter.Range()), iter.Value())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "size=%d height=%d\n", idx.Size(), idx.Height())
			return nil
		},
	}
}

// declared renders n in half-open notation, e.g. [1,10) or (1,10].
func declared(idx *interval.Index[string], n *interval.Range[string]) string {
	from, to := idx.Bounds(n)
	if idx.IsRightClosed() {
		return fmt.Sprintf("(%d,%d]", from, to)
	}
	return fmt.Sprintf("[%d,%d)", from, to)
}
