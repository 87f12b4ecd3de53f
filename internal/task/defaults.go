package task

import "github.com/osse101/EmojiKombat_Go/internal/domain"

// DefaultDefinitions returns the referral and social tasks shipped with the game
func DefaultDefinitions() []domain.TaskDefinition {
	return []domain.TaskDefinition{
		referral("referral_1", "Invite 1 friend", 1, 1_000),
		referral("referral_5", "Invite 5 friends", 5, 5_000),
		referral("referral_10", "Invite 10 friends", 10, 15_000),
		referral("referral_15", "Invite 15 friends", 15, 25_000),
		referral("referral_25", "Invite 25 friends", 25, 50_000),
		referral("referral_35", "Invite 35 friends", 35, 75_000),
		referral("referral_50", "Invite 50 friends", 50, 150_000),
		social("join_channel", "Join Telegram Channel", "Get the latest updates", 2_500),
		social("join_group", "Join Telegram Group", "Chat with other players", 2_500),
		social("follow_twitter", "Follow on X", "Follow us for announcements", 3_000),
		social("subscribe_youtube", "Subscribe on YouTube", "Watch guides and highlights", 3_500),
		social("subscribe_memers", "Subscribe to Memers", "Daily memes from the community", 3_500),
	}
}

func referral(id, title string, requirement, reward int64) domain.TaskDefinition {
	return domain.TaskDefinition{
		ID:          id,
		Title:       title,
		Reward:      reward,
		Type:        domain.TaskTypeReferral,
		Requirement: requirement,
	}
}

func social(id, title, description string, reward int64) domain.TaskDefinition {
	return domain.TaskDefinition{
		ID:          id,
		Title:       title,
		Description: description,
		Reward:      reward,
		Type:        domain.TaskTypeSocial,
	}
}

// DefaultCatalog returns the built-in task catalog
func DefaultCatalog() *Catalog {
	return MustNewCatalog(DefaultDefinitions())
}
