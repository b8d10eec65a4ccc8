package services

import (
	"github.com/lorpaxx/foodgram-project-react/entity"
	"github.com/lorpaxx/foodgram-project-react/repository"
)

type SubscriptionService struct {
	userRepo      *repository.UserRepository
	subscribeRepo *repository.SubscribeRepository
}

func NewSubscriptionService(ur *repository.UserRepository, sr *repository.SubscribeRepository) *SubscriptionService {
	return &SubscriptionService{userRepo: ur, subscribeRepo: sr}
}

func (s *SubscriptionService) authorOrConflict(authorID uint) (*entity.User, error) {
	author, err := s.userRepo.FindByID(authorID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, Conflictf("user with id=%d does not exists", authorID)
		}
		return nil, err
	}
	return author, nil
}

// Subscribe adds the follow relation; self-subscription is rejected.
func (s *SubscriptionService) Subscribe(userID, authorID uint) (*entity.User, error) {
	author, err := s.authorOrConflict(authorID)
	if err != nil {
		return nil, err
	}
	if userID == authorID {
		return nil, ErrSelfSubscribe
	}

	exists, err := s.subscribeRepo.Exists(userID, authorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Conflictf("the user is already add")
	}
	if err := s.subscribeRepo.Add(userID, authorID); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, Conflictf("the user is already add")
		}
		return nil, err
	}
	return author, nil
}

func (s *SubscriptionService) Unsubscribe(userID, authorID uint) error {
	if _, err := s.authorOrConflict(authorID); err != nil {
		return err
	}
	affected, err := s.subscribeRepo.Remove(userID, authorID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return Conflictf("the user is not add")
	}
	return nil
}

func (s *SubscriptionService) Subscriptions(userID uint, offset, limit int) ([]entity.User, int64, error) {
	return s.subscribeRepo.ListAuthors(userID, offset, limit)
}
