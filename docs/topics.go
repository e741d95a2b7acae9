// Package docs holds the user documentation of compound, one markdown file per topic.
package docs

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// ErrUnknownTopic is returned for a topic without documentation.
var ErrUnknownTopic = errors.New("unknown topic")

// Topic is an entry of the documentation index.
type Topic struct {
	Name        string
	Description string
}

// indexLine matches the "* name: description" lines of readme.md.
var indexLine = regexp.MustCompile(`^\*\s+([^:]+):\s*(.*)$`)

// Index returns the topics listed in readme.md, in order.
func Index() ([]Topic, error) {
	content, err := docs.ReadFile("readme.md")
	if err != nil {
		return nil, err
	}
	var topics []Topic
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		if m := indexLine.FindStringSubmatch(scanner.Text()); m != nil {
			topics = append(topics, Topic{Name: strings.TrimSpace(m[1]), Description: strings.TrimSpace(m[2])})
		}
	}
	return topics, scanner.Err()
}

// GetTopic returns the content of a documentation topic. "*" is all topics.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	}

	content, err := docs.ReadFile(topic + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w %q, see 'compound topic' for the list", ErrUnknownTopic, topic)
	}
	if err != nil {
		return "", fmt.Errorf("cannot read topic %q: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated together.
func GetTopics(topics ...string) (string, error) {
	var b bytes.Buffer
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted names of all the topics but the readme.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, f := range files {
		name := strings.TrimSuffix(path.Base(f), ".md")
		if name != "readme" {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
