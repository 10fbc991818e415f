// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/freejido/freejido/internal/curation"
	"github.com/freejido/freejido/internal/models"
	"github.com/freejido/freejido/internal/ranking"
)

var errUsage = errors.New("usage")

type command struct {
	usage string
	run   func(ctx context.Context, req request) error
}

type cli struct {
	svc      *curation.Service
	out      io.Writer
	commands map[string]command
	order    []string
}

func newCLI(svc *curation.Service, out io.Writer) *cli {
	c := &cli{svc: svc, out: out, commands: make(map[string]command)}
	c.register("topics", "topics", c.topics)
	c.register("suggest", "suggest <query>", c.suggest)
	c.register("add-topic", "add-topic <name>", c.addTopic)
	c.register("add-place", "add-place <topicID> <lat> <lng> <name>", c.addPlace)
	c.register("places", "places <topicID> [recommend|distance]", c.places)
	c.register("nearby", "nearby [topicID] [radiusMeters]", c.nearby)
	c.register("show", "show <placeID>", c.show)
	c.register("vote", "vote <placeID> <like|dislike|flag>", c.vote)
	c.register("comment", "comment <placeID> <text>", c.comment)
	c.register("like-comment", "like-comment <placeID> <commentID>", c.likeComment)
	c.register("view", "view", c.view)
	c.register("locate", "locate", c.locate)
	c.register("help", "help", c.help)
	return c
}

func (c *cli) register(name, usage string, run func(context.Context, request) error) {
	c.commands[name] = command{usage: usage, run: run}
	c.order = append(c.order, name)
}

// request is one command invocation. args holds the words after the command
// name; line, when set, is the text after the command name exactly as typed.
type request struct {
	args  []string
	line  string
	typed bool
}

// rest returns the free text that follows the first n words. Typed input keeps
// its spacing; shell arguments are rejoined with single spaces.
func (r request) rest(n int) string {
	if !r.typed {
		if n >= len(r.args) {
			return ""
		}
		return strings.Join(r.args[n:], " ")
	}

	s := r.line
	for i := 0; i < n; i++ {
		s = strings.TrimLeft(s, " \t")
		end := strings.IndexAny(s, " \t")
		if end < 0 {
			return ""
		}
		s = s[end:]
	}
	// one separator belongs to the command syntax; anything after it is text
	if s != "" && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	return s
}

// execute runs one command given as separate shell arguments.
func (c *cli) execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return c.dispatch(ctx, args[0], request{args: args[1:]})
}

// executeLine runs one command typed on a single line.
func (c *cli) executeLine(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name := fields[0]
	after := line[strings.Index(line, name)+len(name):]
	return c.dispatch(ctx, name, request{args: fields[1:], line: after, typed: true})
}

func (c *cli) dispatch(ctx context.Context, name string, req request) error {
	cmd, ok := c.commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", name)
	}
	err := cmd.run(ctx, req)
	if errors.Is(err, errUsage) {
		return fmt.Errorf("usage: %s", cmd.usage)
	}
	return err
}

// loop reads commands from in until EOF, "quit" or context cancellation.
// Command errors are printed and do not stop the loop.
func (c *cli) loop(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(c.out, "> ")
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := scanner.Text()
		if word := strings.TrimSpace(line); word == "quit" || word == "exit" {
			return nil
		}
		if err := c.executeLine(ctx, line); err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
		fmt.Fprint(c.out, "> ")
	}
	return scanner.Err()
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func (c *cli) topics(_ context.Context, _ request) error {
	for _, t := range c.svc.Topics() {
		fmt.Fprintf(c.out, "%d\t%s\n", t.ID, t.Name)
	}
	return nil
}

func (c *cli) suggest(_ context.Context, req request) error {
	query := req.rest(0)
	res := c.svc.Suggest(query)
	for _, t := range res.Topics {
		fmt.Fprintf(c.out, "%d\t%s\n", t.ID, t.Name)
	}
	if res.OfferCreate {
		fmt.Fprintf(c.out, "no topic matches; create it with: add-topic %s\n", query)
	}
	return nil
}

func (c *cli) addTopic(ctx context.Context, req request) error {
	name := req.rest(0)
	id, ok := c.svc.AddTopic(ctx, name)
	if !ok {
		return errUsage
	}
	fmt.Fprintf(c.out, "topic %d created: %s\n", id, name)
	return nil
}

func (c *cli) addPlace(ctx context.Context, req request) error {
	if len(req.args) < 4 {
		return errUsage
	}
	topicID, err := parseID(req.args[0])
	if err != nil {
		return err
	}
	lat, errLat := strconv.ParseFloat(req.args[1], 64)
	lng, errLng := strconv.ParseFloat(req.args[2], 64)
	if errLat != nil || errLng != nil {
		return fmt.Errorf("invalid coordinate %s,%s", req.args[1], req.args[2])
	}

	id, ok := c.svc.AddPlace(ctx, models.PlaceInput{
		TopicID:    topicID,
		Name:       req.rest(3),
		Coordinate: &models.Coordinate{Lat: lat, Lng: lng},
	})
	if !ok {
		return errors.New("place not created: check the topic id and coordinate")
	}
	fmt.Fprintf(c.out, "place %d created\n", id)
	return nil
}

func (c *cli) places(ctx context.Context, req request) error {
	if len(req.args) < 1 || len(req.args) > 2 {
		return errUsage
	}
	topicID, err := parseID(req.args[0])
	if err != nil {
		return err
	}
	modeName := ""
	if len(req.args) == 2 {
		modeName = req.args[1]
	}
	mode, err := ranking.ParseMode(modeName)
	if err != nil {
		return err
	}

	ranked, err := c.svc.Places(ctx, topicID, mode)
	if errors.Is(err, ranking.ErrRequiresLocation) {
		fmt.Fprintln(c.out, "distance ordering needs your location; set MAP_REFERENCE_ENABLED or run locate")
		return nil
	}
	if err != nil {
		return err
	}
	c.printRanked(ranked)
	return nil
}

func (c *cli) nearby(ctx context.Context, req request) error {
	var (
		topicID int64
		radius  float64
		err     error
	)
	if len(req.args) > 2 {
		return errUsage
	}
	if len(req.args) >= 1 {
		if topicID, err = parseID(req.args[0]); err != nil {
			return err
		}
	}
	if len(req.args) == 2 {
		radius, err = strconv.ParseFloat(req.args[1], 64)
		if err != nil || math.IsNaN(radius) || math.IsInf(radius, 0) {
			return fmt.Errorf("invalid radius %q", req.args[1])
		}
	}

	ranked, err := c.svc.Nearby(ctx, topicID, radius)
	if errors.Is(err, ranking.ErrRequiresLocation) {
		fmt.Fprintln(c.out, "nearby search needs your location; set MAP_REFERENCE_ENABLED or run locate")
		return nil
	}
	if err != nil {
		return err
	}
	c.printRanked(ranked)
	return nil
}

func (c *cli) printRanked(ranked []ranking.Ranked) {
	for _, r := range ranked {
		distance := ""
		if r.Distance != nil {
			distance = fmt.Sprintf("\t%.0fm", *r.Distance)
		}
		fmt.Fprintf(c.out, "%d\t%s\t+%d -%d !%d%s\n", r.ID, r.Name, r.Likes, r.Dislikes, r.Flags, distance)
	}
}

func (c *cli) show(_ context.Context, req request) error {
	if len(req.args) != 1 {
		return errUsage
	}
	id, err := parseID(req.args[0])
	if err != nil {
		return err
	}
	p, ok := c.svc.Place(id)
	if !ok {
		return fmt.Errorf("place %d not found", id)
	}

	fmt.Fprintf(c.out, "%d\t%s\n", p.ID, p.Name)
	if p.Description != "" {
		fmt.Fprintf(c.out, "\t%s\n", p.Description)
	}
	fmt.Fprintf(c.out, "\t(%.5f, %.5f)\n", p.Coordinate.Lat, p.Coordinate.Lng)
	fmt.Fprintf(c.out, "\tlikes %d, dislikes %d, flags %d, your vote: %s\n", p.Likes, p.Dislikes, p.Flags, p.Vote)
	for _, cm := range p.Comments {
		mark := " "
		if cm.Liked {
			mark = "*"
		}
		fmt.Fprintf(c.out, "\t%s[%d] %s (%d)\n", mark, cm.ID, cm.Text, cm.Likes)
	}
	return nil
}

func (c *cli) vote(ctx context.Context, req request) error {
	if len(req.args) != 2 {
		return errUsage
	}
	id, err := parseID(req.args[0])
	if err != nil {
		return err
	}
	kind, err := models.ParseVoteKind(req.args[1])
	if err != nil {
		return err
	}

	out, err := c.svc.Vote(ctx, id, kind)
	if !out.Applied {
		return fmt.Errorf("place %d not found", id)
	}
	fmt.Fprintf(c.out, "vote on %d: %s -> %s\n", id, out.Previous, out.Current)
	if err != nil {
		// The vote stands for this session even if it could not be saved.
		fmt.Fprintf(c.out, "warning: %v\n", err)
	}
	return nil
}

func (c *cli) comment(ctx context.Context, req request) error {
	if len(req.args) < 2 {
		return errUsage
	}
	id, err := parseID(req.args[0])
	if err != nil {
		return err
	}
	commentID, ok := c.svc.Comment(ctx, id, req.rest(1))
	if !ok {
		return fmt.Errorf("place %d not found", id)
	}
	fmt.Fprintf(c.out, "comment %d added\n", commentID)
	return nil
}

func (c *cli) likeComment(ctx context.Context, req request) error {
	if len(req.args) != 2 {
		return errUsage
	}
	placeID, err := parseID(req.args[0])
	if err != nil {
		return err
	}
	commentID, err := parseID(req.args[1])
	if err != nil {
		return err
	}
	liked, ok := c.svc.LikeComment(ctx, placeID, commentID)
	if !ok {
		return fmt.Errorf("comment %d not found on place %d", commentID, placeID)
	}
	if liked {
		fmt.Fprintln(c.out, "liked")
	} else {
		fmt.Fprintln(c.out, "like removed")
	}
	return nil
}

func (c *cli) view(_ context.Context, _ request) error {
	v := c.svc.View()
	source := "default"
	if v.Located {
		source = "your location"
	}
	fmt.Fprintf(c.out, "center (%.4f, %.4f) zoom %d [%s]\n", v.Center.Lat, v.Center.Lng, v.Zoom, source)
	return nil
}

func (c *cli) locate(ctx context.Context, _ request) error {
	if err := c.svc.RefreshLocation(ctx); err != nil {
		fmt.Fprintf(c.out, "location unavailable: %v\n", err)
		return nil
	}
	return c.view(ctx, request{})
}

func (c *cli) help(_ context.Context, _ request) error {
	for _, name := range c.order {
		fmt.Fprintf(c.out, "  %s\n", c.commands[name].usage)
	}
	fmt.Fprintln(c.out, "  quit")
	return nil
}
