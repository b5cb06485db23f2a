package portfolio

import (
	"strconv"
	"time"

	"github.com/nahidreza/folio/pkg/frontmatter"
)

// Draft seeds the front matter of a new entry.
type Draft struct {
	Slug             string
	Title            string
	ShortDescription string
	Tech             []string
	Year             int
}

// scaffoldMatter orders the keys the way entries are usually written.
type scaffoldMatter struct {
	Title            string   `yaml:"title" toml:"title"`
	ShortDescription string   `yaml:"shortDescription" toml:"shortDescription"`
	Tech             []string `yaml:"tech" toml:"tech"`
	Year             string   `yaml:"year" toml:"year"`
	Thumbnail        *string  `yaml:"thumbnail,omitempty" toml:"thumbnail,omitempty"`
	Client           *string  `yaml:"client,omitempty" toml:"client,omitempty"`
	GitHub           *string  `yaml:"github,omitempty" toml:"github,omitempty"`
	Live             *string  `yaml:"live,omitempty" toml:"live,omitempty"`
}

const workBody = `## Overview

What the client needed and why.

## Approach

## Outcome
`

const projectBody = `## About

What it does and who it is for.

## Usage
`

// Scaffold renders the initial file for a new entry of kind. Every key the
// kind understands is present so the author can fill it in. A zero Year
// means the current year.
func Scaffold(kind Kind, d Draft, format frontmatter.Format, now time.Time) ([]byte, error) {
	title := d.Title
	if title == "" {
		title = d.Slug
	}
	year := d.Year
	if year == 0 {
		year = now.Year()
	}
	tech := d.Tech
	if tech == nil {
		tech = []string{}
	}

	matter := scaffoldMatter{
		Title:            title,
		ShortDescription: d.ShortDescription,
		Tech:             tech,
		Year:             strconv.Itoa(year),
		Thumbnail:        new(string),
		Client:           new(string),
	}

	body := workBody
	if kind == KindProjects {
		matter.GitHub = new(string)
		matter.Live = new(string)
		body = projectBody
	}

	return frontmatter.Encode(format, matter, body)
}
