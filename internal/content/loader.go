package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

//go:embed data
var embedded embed.FS

const (
	biosFile         = "bios.yaml"
	servicesFile     = "services.yaml"
	testimonialsFile = "testimonials.yaml"
	caseStudiesFile  = "case_studies.yaml"
	blogIdeasFile    = "blog_ideas.yaml"
	projectsFile     = "projects.yaml"
	postsDir         = "posts"
)

// Embedded returns the seed content compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("content: embedded data missing: %v", err))
	}
	return sub
}

// LoadEmbedded loads the catalog compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return Load(Embedded())
}

// Load reads a content tree laid out like the embedded data directory:
// one YAML sequence per collection plus posts/*.md with YAML frontmatter.
// A missing collection file yields an empty collection.
func Load(fsys fs.FS) (*Catalog, error) {
	var c Collections

	if err := readYAML(fsys, biosFile, &c.Bios); err != nil {
		return nil, err
	}
	if err := readYAML(fsys, servicesFile, &c.Services); err != nil {
		return nil, err
	}
	if err := readYAML(fsys, testimonialsFile, &c.Testimonials); err != nil {
		return nil, err
	}
	if err := readYAML(fsys, caseStudiesFile, &c.CaseStudies); err != nil {
		return nil, err
	}
	if err := readYAML(fsys, blogIdeasFile, &c.BlogIdeas); err != nil {
		return nil, err
	}
	if err := readYAML(fsys, projectsFile, &c.Projects); err != nil {
		return nil, err
	}

	posts, err := readPosts(fsys)
	if err != nil {
		return nil, err
	}
	c.Posts = posts

	cat, err := NewCatalog(c)
	if err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return cat, nil
}

func readYAML(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error unmarshalling %s: %w", name, err)
	}
	return nil
}

func readPosts(fsys fs.FS) ([]BlogPost, error) {
	files, err := fs.Glob(fsys, path.Join(postsDir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	posts := make([]BlogPost, 0, len(files))
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", name, err)
		}
		post, err := ParsePost(data)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", name, err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// ParsePost decodes a markdown document with YAML frontmatter into a
// BlogPost. The markdown body becomes Content.
func ParsePost(data []byte) (BlogPost, error) {
	var post BlogPost
	body, err := frontmatter.MustParse(bytes.NewReader(data), &post)
	if err != nil {
		return BlogPost{}, err
	}
	post.Content = strings.TrimSpace(string(body))
	return post, nil
}
