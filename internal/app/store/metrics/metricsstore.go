package metricsstore

import (
	"context"

	campusstore "github.com/dalemusser/admitportal/internal/app/store/campuses"
	programstore "github.com/dalemusser/admitportal/internal/app/store/programs"
	studentstore "github.com/dalemusser/admitportal/internal/app/store/students"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

// UniversityStats is the set of totals shown on a university's dashboard.
type UniversityStats struct {
	Campuses   int64 `json:"campuses"`
	Programs   int64 `json:"programs"`
	Applicants int64 `json:"applicants"`
}

// FetchUniversityStats runs the three counts concurrently. Any failing count
// fails the whole call.
func FetchUniversityStats(ctx context.Context, db *mongo.Database, universityID primitive.ObjectID) (UniversityStats, error) {
	var out UniversityStats
	byUniversity := bson.M{"university_id": universityID}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := campusstore.New(db).Count(ctx, byUniversity)
		out.Campuses = n
		return err
	})
	g.Go(func() error {
		n, err := programstore.New(db).Count(ctx, byUniversity)
		out.Programs = n
		return err
	})
	g.Go(func() error {
		n, err := studentstore.New(db).CountApplicants(ctx, universityID)
		out.Applicants = n
		return err
	})

	if err := g.Wait(); err != nil {
		return UniversityStats{}, err
	}
	return out, nil
}
