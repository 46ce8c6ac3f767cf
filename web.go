package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// isWebURL checks if the input string is an HTTP/HTTPS URL.
func isWebURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// fetchWebEntries fetches a documentation page, converts it to
// markdown, and returns it as an entry with preloaded content so the
// extractor can treat it like any local file. With link traversal
// enabled, same-protocol links are followed breadth-limited by
// cfg.LinkDepth, with a visited set guarding against loops.
func fetchWebEntries(startURL string, cfg Config, status *statusPrinter) ([]FileEntry, error) {
	maxDepth := 0
	if cfg.TraverseLinks {
		maxDepth = cfg.LinkDepth
	}
	visited := make(map[string]bool)
	entries := fetchWebRecursive(startURL, 0, maxDepth, visited, status)
	if len(entries) == 0 {
		return nil, fmt.Errorf("no indexable content at %s", startURL)
	}
	return entries, nil
}

func fetchWebRecursive(pageURL string, depth, maxDepth int, visited map[string]bool, status *statusPrinter) []FileEntry {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		status.Warnf("invalid URL %s: %v", pageURL, err)
		return nil
	}
	parsedURL.Fragment = "" // fragments would defeat the visited set
	cleanURL := parsedURL.String()

	if depth > maxDepth || visited[cleanURL] {
		return nil
	}
	visited[cleanURL] = true
	status.Infof("Fetching %s", cleanURL)

	res, err := http.Get(cleanURL)
	if err != nil {
		status.Warnf("failed to fetch %s: %v", cleanURL, err)
		return nil
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		status.Warnf("failed to fetch %s: status %d", cleanURL, res.StatusCode)
		return nil
	}
	if !strings.Contains(strings.ToLower(res.Header.Get("Content-Type")), "text/html") {
		return nil
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		status.Warnf("failed to read response from %s: %v", cleanURL, err)
		return nil
	}

	var entries []FileEntry
	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(string(body))
	if err != nil {
		status.Warnf("failed to convert %s to markdown: %v", cleanURL, err)
	} else {
		entries = append(entries, FileEntry{
			Path:      cleanURL,
			Extension: "md", // converted pages are indexed as markdown
			Content:   []byte(markdown),
			Size:      int64(len(markdown)),
			ModTime:   time.Now(),
			Resolved:  true,
		})
	}

	if depth < maxDepth {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
		if err != nil {
			status.Warnf("failed to parse HTML from %s: %v", cleanURL, err)
			return entries
		}
		doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
			link, exists := s.Attr("href")
			if !exists || link == "" || strings.HasPrefix(link, "#") {
				return
			}
			lower := strings.ToLower(link)
			if strings.HasPrefix(lower, "mailto:") || strings.HasPrefix(lower, "javascript:") {
				return
			}
			resolved, err := parsedURL.Parse(link)
			if err != nil {
				return
			}
			if resolved.Scheme == "http" || resolved.Scheme == "https" {
				entries = append(entries, fetchWebRecursive(resolved.String(), depth+1, maxDepth, visited, status)...)
			}
		})
	}

	return entries
}
