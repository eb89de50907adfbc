package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/myflix/movie-api/internal/core/domain"
)

// Document field names are PascalCase to stay compatible with the data the
// catalogue was originally populated with.

type genreDocument struct {
	Name        string `bson:"Name,omitempty"`
	Description string `bson:"Description,omitempty"`
}

type directorDocument struct {
	Name  string     `bson:"Name,omitempty"`
	Bio   string     `bson:"Bio,omitempty"`
	Birth *time.Time `bson:"Birth,omitempty"`
	Death *time.Time `bson:"Death,omitempty"`
}

type movieDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"Title"`
	Description string             `bson:"Description"`
	Genre       genreDocument      `bson:"Genre"`
	Director    directorDocument   `bson:"Director"`
	Actors      []string           `bson:"Actors"`
	ImagePath   string             `bson:"ImagePath,omitempty"`
	Featured    bool               `bson:"Featured"`
}

type userDocument struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	Username        string               `bson:"Username"`
	Password        string               `bson:"Password"`
	Email           string               `bson:"Email"`
	Birthday        *time.Time           `bson:"Birthday,omitempty"`
	FavouriteMovies []primitive.ObjectID `bson:"FavouriteMovies"`
}

func toMovieDocument(m domain.Movie) (movieDocument, error) {
	doc := movieDocument{
		Title:       m.Title,
		Description: m.Description,
		Genre:       genreDocument{Name: m.Genre.Name, Description: m.Genre.Description},
		Director: directorDocument{
			Name:  m.Director.Name,
			Bio:   m.Director.Bio,
			Birth: utcPtr(m.Director.Birth),
			Death: utcPtr(m.Director.Death),
		},
		Actors:    m.Actors,
		ImagePath: m.ImagePath,
		Featured:  m.Featured,
	}
	if doc.Actors == nil {
		doc.Actors = []string{}
	}
	if m.ID != "" {
		id, err := primitive.ObjectIDFromHex(m.ID)
		if err != nil {
			return movieDocument{}, domain.ErrInvalidMovieID
		}
		doc.ID = id
	}
	return doc, nil
}

func (d movieDocument) toDomain() domain.Movie {
	actors := d.Actors
	if actors == nil {
		actors = []string{}
	}
	return domain.Movie{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Genre:       domain.Genre{Name: d.Genre.Name, Description: d.Genre.Description},
		Director: domain.Director{
			Name:  d.Director.Name,
			Bio:   d.Director.Bio,
			Birth: d.Director.Birth,
			Death: d.Director.Death,
		},
		Actors:    actors,
		ImagePath: d.ImagePath,
		Featured:  d.Featured,
	}
}

func toUserDocument(u *domain.User) (userDocument, error) {
	favs, err := toObjectIDs(u.FavouriteMovies)
	if err != nil {
		return userDocument{}, err
	}
	return userDocument{
		Username:        u.Username,
		Password:        u.PasswordHash,
		Email:           u.Email,
		Birthday:        utcPtr(u.Birthday),
		FavouriteMovies: favs,
	}, nil
}

func (d userDocument) toDomain() *domain.User {
	favs := make([]string, len(d.FavouriteMovies))
	for i, id := range d.FavouriteMovies {
		favs[i] = id.Hex()
	}
	return &domain.User{
		ID:              d.ID.Hex(),
		Username:        d.Username,
		PasswordHash:    d.Password,
		Email:           d.Email,
		Birthday:        d.Birthday,
		FavouriteMovies: favs,
	}
}

func toObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, domain.ErrInvalidMovieID
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
