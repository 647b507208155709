package core

// Problem is the subset of a problem the engine needs.
type Problem struct {
	ID    int64  `db:"problem_id"`
	Alias string `db:"alias"`
	Title string `db:"title"`
}

// Group is a named set of users, such as the reviewer group.
type Group struct {
	ID    int64  `db:"group_id"`
	Alias string `db:"alias"`
	Name  string `db:"name"`
}
