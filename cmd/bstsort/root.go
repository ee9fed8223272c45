// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/google/bst"
	"github.com/google/bst/internal/applog"
	"github.com/google/bst/sorter"
)

// options holds the command line configuration.
type options struct {
	order    string
	orderSet bool
	strings  bool
	deletes  []string
	debug    bool
	sort     bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "bstsort [flags] VALUE...",
		Short: "Print the traversals of a binary search tree built from VALUEs",
		Example: `bstsort --order all 5 3 8 1 4
bstsort --sort --strings pear apple fig`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.orderSet = cmd.Flags().Changed("order")
			logger := applog.WithScope(applog.NewLogger(stderr, opts.debug), "BSTSORT")
			err := run(stdout, logger, opts, args)
			if err != nil {
				logger.Error().Err(err).Msg("failed")
			}
			return err
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.order, "order", "in", "traversal order: pre, in, post or all")
	flags.BoolVar(&opts.strings, "strings", false, "treat values as strings instead of integers")
	flags.StringArrayVar(&opts.deletes, "delete", nil, "delete this value before printing (repeatable)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.sort, "sort", false, "print the sorted values instead of a traversal")

	return cmd
}

func run(w io.Writer, logger zerolog.Logger, opts *options, args []string) error {
	if len(args) == 0 {
		return errors.New("no values given")
	}
	if opts.sort && (opts.orderSet || len(opts.deletes) > 0) {
		return errors.New("--sort cannot be combined with --order or --delete")
	}
	orders, err := parseOrders(opts.order)
	if err != nil {
		return err
	}

	if opts.strings {
		return printTree(w, logger, opts, orders, args, opts.deletes)
	}

	values, err := parseInts(args)
	if err != nil {
		return err
	}
	deletes, err := parseInts(opts.deletes)
	if err != nil {
		return errors.Wrap(err, "--delete")
	}
	return printTree(w, logger, opts, orders, values, deletes)
}

func parseOrders(s string) ([]bst.Order, error) {
	if s == "all" {
		return []bst.Order{bst.PreOrder, bst.InOrder, bst.PostOrder}, nil
	}
	o, err := bst.ParseOrder(s)
	if err != nil {
		return nil, err
	}
	return []bst.Order{o}, nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q", a)
		}
		out = append(out, v)
	}
	return out, nil
}

func printTree[T bst.Ordered](w io.Writer, logger zerolog.Logger, opts *options, orders []bst.Order, values, deletes []T) error {
	if opts.sort {
		if err := sorter.Sort(values); err != nil {
			return errors.Wrap(err, "sort")
		}
		logger.Debug().Int("count", len(values)).Msg("sorted")
		_, err := fmt.Fprintln(w, bst.Join(values))
		return err
	}

	tr := bst.NewOrdered[T]()
	if err := tr.InsertAll(values...); err != nil {
		return errors.Wrap(err, "build tree")
	}
	logger.Debug().Int("len", tr.Len()).Msg("tree built")

	for _, v := range deletes {
		if !tr.Delete(v) {
			logger.Warn().Msgf("delete %v: not in tree", v)
		}
	}

	for _, o := range orders {
		if _, err := fmt.Fprintf(w, "%s: %s\n", o, tr.Format(o)); err != nil {
			return err
		}
	}
	return nil
}
