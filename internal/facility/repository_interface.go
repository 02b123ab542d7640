package facility

import "context"

type Repository interface {
	CreateFacility(ctx context.Context, req CreateFacilityRequest) (*Facility, error)
	ListFacilities(ctx context.Context) ([]Facility, error)
	GetGymInfo(ctx context.Context) (*GymInfo, error)
	UpsertGymInfo(ctx context.Context, req UpdateGymInfoRequest) (*GymInfo, error)
}
