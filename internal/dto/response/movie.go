package response

import (
	"movie-catalog/internal/data/entity"
)

type GenreResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DirectorResponse struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	BirthYear *int   `json:"birth_year,omitempty"`
	DeathYear *int   `json:"death_year,omitempty"`
}

type MovieResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Genre       GenreResponse    `json:"genre"`
	Director    DirectorResponse `json:"director"`
	ImagePath   *string          `json:"image_path,omitempty"`
	Featured    bool             `json:"featured"`
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		Name:        genre.Name,
		Description: genre.Description,
	}
}

func DirectorToResponse(director *entity.Director) DirectorResponse {
	return DirectorResponse{
		Name:      director.Name,
		Bio:       director.Bio,
		BirthYear: director.BirthYear,
		DeathYear: director.DeathYear,
	}
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		Genre:       GenreToResponse(&movie.Genre),
		Director:    DirectorToResponse(&movie.Director),
		ImagePath:   movie.ImagePath,
		Featured:    movie.Featured,
	}
}
