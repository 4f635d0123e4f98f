// Package mocks provides function-field fakes of the service interfaces for
// handler and middleware tests.
//
// Each fake calls its XxxFn field when set and otherwise returns its zero
// values, so a test only wires the methods it exercises:
//
//	dresses := &mocks.MockDressService{
//	    ListLikedDressesFn: func(ctx context.Context, userID uuid.UUID) ([]domain.LikedDress, error) {
//	        return nil, service.ErrNotFoundID
//	    },
//	}
package mocks
