package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	Create(ctx context.Context, in Input) (Team, error)
	Update(ctx context.Context, id int64, in Input) (Team, bool, error)
	Delete(ctx context.Context, id int64) error
}

// Session is a Repository bound to a single database connection.
type Session interface {
	Repository
	Close() error
}

// Opener acquires a fresh Session for one invocation.
type Opener interface {
	Open(ctx context.Context) (Session, error)
}
