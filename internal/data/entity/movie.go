package entity

// Genre is embedded in a movie record
type Genre struct {
	Name        string `db:"genre_name"`
	Description string `db:"genre_description"`
}

// Director is embedded in a movie record
type Director struct {
	Name      string `db:"director_name"`
	Bio       string `db:"director_bio"`
	BirthYear *int   `db:"director_birth_year"`
	DeathYear *int   `db:"director_death_year"`
}

// Movie is read-only from the API's perspective; the catalog is managed
// outside this service.
type Movie struct {
	Base
	Title       string `db:"title"`
	Description string `db:"description"`
	Genre       Genre
	Director    Director
	ImagePath   *string `db:"image_path"`
	Featured    bool    `db:"featured"`
}
