package content

// BioType selects how long a bio is.
type BioType string

const (
	BioLong   BioType = "long"
	BioMedium BioType = "medium"
	BioShort  BioType = "short"
)

// Bio is a block of about-me copy. Identity is the (Type, FocusArea) pair.
type Bio struct {
	Type      BioType `yaml:"type" json:"type"`
	Content   string  `yaml:"content" json:"content"`
	FocusArea string  `yaml:"focusArea,omitempty" json:"focusArea,omitempty"`
}

// ServiceDescription describes one service offering.
type ServiceDescription struct {
	ID           string   `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Slug         string   `yaml:"slug" json:"slug"`
	Problem      string   `yaml:"problem" json:"problem"`
	Approach     string   `yaml:"approach" json:"approach"`
	Benefits     []string `yaml:"benefits" json:"benefits"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Outcomes     []string `yaml:"outcomes" json:"outcomes"`
}

// TestimonialFocus is the aspect of an engagement a testimonial praises.
type TestimonialFocus string

const (
	FocusProblemSolving     TestimonialFocus = "problem-solving"
	FocusCommunication      TestimonialFocus = "communication"
	FocusTechnicalExpertise TestimonialFocus = "technical-expertise"
	FocusOutcomes           TestimonialFocus = "outcomes"
	FocusRelationship       TestimonialFocus = "relationship"
)

// Valid reports whether f is one of the known focus values.
func (f TestimonialFocus) Valid() bool {
	switch f {
	case FocusProblemSolving, FocusCommunication, FocusTechnicalExpertise, FocusOutcomes, FocusRelationship:
		return true
	}
	return false
}

// Testimonial is a client quote.
type Testimonial struct {
	ID            string           `yaml:"id" json:"id"`
	ClientName    string           `yaml:"clientName" json:"clientName"`
	ClientTitle   string           `yaml:"clientTitle,omitempty" json:"clientTitle,omitempty"`
	ClientCompany string           `yaml:"clientCompany,omitempty" json:"clientCompany,omitempty"`
	Content       string           `yaml:"content" json:"content"`
	Focus         TestimonialFocus `yaml:"focus" json:"focus"`
	ProjectType   string           `yaml:"projectType,omitempty" json:"projectType,omitempty"`
	IsAnonymized  bool             `yaml:"isAnonymized,omitempty" json:"isAnonymized,omitempty"`
}

// CaseStudyResults summarizes what an engagement achieved.
type CaseStudyResults struct {
	Description string   `yaml:"description" json:"description"`
	Metrics     []string `yaml:"metrics" json:"metrics"`
}

// CaseStudyOutline is a long-form write-up of a client engagement.
type CaseStudyOutline struct {
	ID                  string           `yaml:"id" json:"id"`
	Title               string           `yaml:"title" json:"title"`
	ClientIndustry      string           `yaml:"clientIndustry" json:"clientIndustry"`
	BusinessChallenge   string           `yaml:"businessChallenge" json:"businessChallenge"`
	Objectives          []string         `yaml:"objectives" json:"objectives"`
	TechnicalChallenges []string         `yaml:"technicalChallenges" json:"technicalChallenges"`
	SolutionApproach    string           `yaml:"solutionApproach" json:"solutionApproach"`
	Implementation      string           `yaml:"implementation" json:"implementation"`
	Technologies        []string         `yaml:"technologies" json:"technologies"`
	Results             CaseStudyResults `yaml:"results" json:"results"`
	ClientFeedback      string           `yaml:"clientFeedback" json:"clientFeedback"`
	LessonsLearned      []string         `yaml:"lessonsLearned" json:"lessonsLearned"`
}

// Difficulty rates how advanced a blog article idea is.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is one of the known difficulty values.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// BlogArticleIdea is a planned article, used for "read next" suggestions.
type BlogArticleIdea struct {
	ID                      string     `yaml:"id" json:"id"`
	Title                   string     `yaml:"title" json:"title"`
	Synopsis                string     `yaml:"synopsis" json:"synopsis"`
	TargetKeywords          []string   `yaml:"targetKeywords" json:"targetKeywords"`
	ClientProblemsAddressed []string   `yaml:"clientProblemsAddressed" json:"clientProblemsAddressed"`
	EstimatedReadingTime    int        `yaml:"estimatedReadingTime" json:"estimatedReadingTime"`
	Difficulty              Difficulty `yaml:"difficulty" json:"difficulty"`
}

// Author is the byline attached to a blog post.
type Author struct {
	Name  string `yaml:"name" json:"name"`
	Title string `yaml:"title" json:"title"`
	Bio   string `yaml:"bio" json:"bio"`
}

// BlogPost is a published article. Content holds markdown.
type BlogPost struct {
	ID            string   `yaml:"id" json:"id"`
	Slug          string   `yaml:"slug" json:"slug"`
	Title         string   `yaml:"title" json:"title"`
	PublishedDate string   `yaml:"publishedDate" json:"publishedDate"`
	Author        Author   `yaml:"author" json:"author"`
	Content       string   `yaml:"-" json:"content"`
	Excerpt       string   `yaml:"excerpt" json:"excerpt"`
	ReadingTime   int      `yaml:"readingTime" json:"readingTime"`
	Categories    []string `yaml:"categories" json:"categories"`
	Tags          []string `yaml:"tags" json:"tags"`
	IsFeatured    bool     `yaml:"featured" json:"isFeatured"`
}

// Technology is a named tool used on a project.
type Technology struct {
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`
}

// Outcome is a measurable project result, e.g. Value "+32%".
type Outcome struct {
	Metric      string `yaml:"metric" json:"metric"`
	Value       string `yaml:"value" json:"value"`
	Description string `yaml:"description" json:"description"`
}

// Project is a portfolio entry on the work pages.
type Project struct {
	ID           string       `yaml:"id" json:"id"`
	Slug         string       `yaml:"slug" json:"slug"`
	Title        string       `yaml:"title" json:"title"`
	Client       string       `yaml:"client" json:"client"`
	Summary      string       `yaml:"summary" json:"summary"`
	Problem      string       `yaml:"problem" json:"problem"`
	Solution     string       `yaml:"solution" json:"solution"`
	Industry     string       `yaml:"industry" json:"industry"`
	Technologies []Technology `yaml:"technologies" json:"technologies"`
	Outcomes     []Outcome    `yaml:"outcomes" json:"outcomes"`
	Date         string       `yaml:"date" json:"date"`
	IsFeatured   bool         `yaml:"featured" json:"isFeatured"`
}
