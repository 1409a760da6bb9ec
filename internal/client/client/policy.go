package client

// Operation names one remote call. The value is used in logs and metrics.
type Operation string

const (
	OpLogin                     Operation = "login"
	OpLogout                    Operation = "logout"
	OpRegister                  Operation = "register"
	OpGetUserInfo               Operation = "get_user_info"
	OpGetAllUsers               Operation = "get_all_users"
	OpGetUserByID               Operation = "get_user_by_id"
	OpGetRestaurants            Operation = "get_restaurants"
	OpGetRestaurantByID         Operation = "get_restaurant_by_id"
	OpGetSimilarRestaurants     Operation = "get_similar_restaurants"
	OpGetUserVisits             Operation = "get_user_visits"
	OpGetVisitByID              Operation = "get_visit_by_id"
	OpGetVisitsByRestaurantID   Operation = "get_visits_by_restaurant_id"
	OpCreateVisit               Operation = "create_visit"
	OpCreateFavoriteList        Operation = "create_favorite_list"
	OpCreateDefaultFavoriteList Operation = "create_default_favorite_list"
	OpUpdateFavoriteList        Operation = "update_favorite_list"
	OpDeleteFavoriteList        Operation = "delete_favorite_list"
	OpGetFavoriteRestaurants    Operation = "get_favorite_restaurants"
	OpGetUserFavoriteLists      Operation = "get_user_favorite_lists"
	OpAddFavoriteRestaurant     Operation = "add_favorite_restaurant"
	OpRemoveFavoriteRestaurant  Operation = "remove_favorite_restaurant"
	OpFollowUser                Operation = "follow_user"
	OpUnfollowUser              Operation = "unfollow_user"
)

// ErrorPolicy says what an operation does with a remote or transport failure.
type ErrorPolicy int

const (
	// Propagate returns the failure to the caller.
	Propagate ErrorPolicy = iota
	// Degrade logs the failure and returns the operation's empty result.
	Degrade
)

func (p ErrorPolicy) String() string {
	if p == Degrade {
		return "degrade"
	}
	return "propagate"
}

// Policies lists the error policy of every operation. The split is not
// uniform on purpose: reads mostly degrade, identity and list-editing calls
// propagate. A new operation needs an explicit entry here.
var Policies = map[Operation]ErrorPolicy{
	OpLogin:                     Propagate,
	OpLogout:                    Propagate,
	OpRegister:                  Propagate,
	OpGetUserInfo:               Degrade,
	OpGetAllUsers:               Degrade,
	OpGetUserByID:               Degrade,
	OpGetRestaurants:            Degrade,
	OpGetRestaurantByID:         Degrade,
	OpGetSimilarRestaurants:     Degrade,
	OpGetUserVisits:             Degrade,
	OpGetVisitByID:              Degrade,
	OpGetVisitsByRestaurantID:   Degrade,
	OpCreateVisit:               Degrade,
	OpCreateFavoriteList:        Degrade,
	OpCreateDefaultFavoriteList: Degrade,
	OpUpdateFavoriteList:        Propagate,
	OpDeleteFavoriteList:        Propagate,
	OpGetFavoriteRestaurants:    Degrade,
	OpGetUserFavoriteLists:      Degrade,
	OpAddFavoriteRestaurant:     Degrade,
	OpRemoveFavoriteRestaurant:  Degrade,
	OpFollowUser:                Degrade,
	OpUnfollowUser:              Degrade,
}

// PolicyFor returns the policy of op; unknown operations propagate.
func PolicyFor(op Operation) ErrorPolicy {
	if p, ok := Policies[op]; ok {
		return p
	}
	return Propagate
}
