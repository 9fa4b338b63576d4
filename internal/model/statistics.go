package model

// TagCount is one entry in the tag frequency distribution.
type TagCount struct {
	Name  string
	Count int
}

// OpenCount pairs a project name with how often it was opened.
type OpenCount struct {
	Name  string
	Count int
}

// Statistics is the aggregate view over the catalog. TagDistribution holds at
// most the ten most frequent tags, MostOpened at most the five most opened
// projects, both in descending order.
type Statistics struct {
	TotalProjects   int
	Favorites       int
	TagDistribution []TagCount
	MostOpened      []OpenCount
}
