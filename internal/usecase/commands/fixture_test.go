//go:build unit

package commands_test

import (
	"context"
	"time"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/shared"
	sharedmock "marketplace-api/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 4, 2, 15, 30, 0, 0, time.UTC)

// fixture wires a mocked unit of work whose Within runs the callback against
// one transaction exposing the repository mocks.
type fixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	users     *sharedmock.MockUserRepository
	profiles  *sharedmock.MockProfileRepository
	products  *sharedmock.MockProductRepository
	rooms     *sharedmock.MockChatRoomRepository
	messages  *sharedmock.MockMessageRepository
	reviews   *sharedmock.MockReviewRepository
	likes     *sharedmock.MockLikeRepository
	reads     *sharedmock.MockCommandReads
	publisher *sharedmock.MockEventPublisher
	objects   *sharedmock.MockObjectStore
	clock     *clock.MockClock
}

func newFixture(ctrl *gomock.Controller) *fixture {
	f := &fixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		users:     sharedmock.NewMockUserRepository(ctrl),
		profiles:  sharedmock.NewMockProfileRepository(ctrl),
		products:  sharedmock.NewMockProductRepository(ctrl),
		rooms:     sharedmock.NewMockChatRoomRepository(ctrl),
		messages:  sharedmock.NewMockMessageRepository(ctrl),
		reviews:   sharedmock.NewMockReviewRepository(ctrl),
		likes:     sharedmock.NewMockLikeRepository(ctrl),
		reads:     sharedmock.NewMockCommandReads(ctrl),
		publisher: sharedmock.NewMockEventPublisher(ctrl),
		objects:   sharedmock.NewMockObjectStore(ctrl),
		clock:     clock.NewMockClock(fixedNow),
	}

	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().Profiles().Return(f.profiles).AnyTimes()
	f.tx.EXPECT().Products().Return(f.products).AnyTimes()
	f.tx.EXPECT().ChatRooms().Return(f.rooms).AnyTimes()
	f.tx.EXPECT().Messages().Return(f.messages).AnyTimes()
	f.tx.EXPECT().Reviews().Return(f.reviews).AnyTimes()
	f.tx.EXPECT().Likes().Return(f.likes).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	return f
}

func notFound() error {
	return infra.WrapRepoErr("row missing", nil, infra.KindNotFound)
}

func duplicate() error {
	return infra.WrapRepoErr("unique violation", nil, infra.KindDuplicateKey)
}
