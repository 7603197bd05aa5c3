package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyTabHome          = "tab_home"
	KeyTabVideo         = "tab_video"
	KeyTabDiscover      = "tab_discover"
	KeyTabMessages      = "tab_messages"
	KeyTabProfile       = "tab_profile"
	KeyPullToRefresh    = "pull_to_refresh"
	KeyReleaseToRefresh = "release_to_refresh"
	KeyRefreshing       = "refreshing"
	KeyRefreshed        = "refreshed"
	KeyLoadingMore      = "loading_more"
	KeyNoMore           = "no_more"
	KeyLoadFailed       = "load_failed"
	KeyRetry            = "retry"
	KeyComposeHint      = "compose_hint"
	KeyPublish          = "publish"
	KeyPublishFailed    = "publish_failed"
	KeyEmptyPost        = "empty_post"
	KeyEditProfile      = "edit_profile"
	KeyNickname         = "nickname"
	KeyAvatarURL        = "avatar_url"
	KeyLanguage         = "language"
	KeyImmersive        = "immersive"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyMyPosts          = "my_posts"
	KeyTrendingCached   = "trending_cached"
	KeyTrendingUpdated  = "trending_updated"
	KeyTrendingFailed   = "trending_failed"
	KeyUnread           = "unread"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// systemLanguage maps the OS locale to a supported language code
func systemLanguage() string {
	locale := strings.ToLower(lang.SystemLocale().LanguageString())
	if strings.HasPrefix(locale, "zh") {
		return "zh"
	}
	return "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Feed",
		KeyTabHome:          "Home",
		KeyTabVideo:         "Video",
		KeyTabDiscover:      "Discover",
		KeyTabMessages:      "Messages",
		KeyTabProfile:       "Me",
		KeyPullToRefresh:    "Pull to refresh",
		KeyReleaseToRefresh: "Release to refresh",
		KeyRefreshing:       "Refreshing...",
		KeyRefreshed:        "Refreshed",
		KeyLoadingMore:      "Loading...",
		KeyNoMore:           "No more posts",
		KeyLoadFailed:       "Failed to load",
		KeyRetry:            "Retry",
		KeyComposeHint:      "What's happening?",
		KeyPublish:          "Post",
		KeyPublishFailed:    "Could not publish the post",
		KeyEmptyPost:        "Write something first",
		KeyEditProfile:      "Edit profile",
		KeyNickname:         "Nickname",
		KeyAvatarURL:        "Avatar URL",
		KeyLanguage:         "Language",
		KeyImmersive:        "Immersive system bars",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Profile saved",
		KeyMyPosts:          "My posts",
		KeyTrendingCached:   "Showing saved list",
		KeyTrendingUpdated:  "Updated",
		KeyTrendingFailed:   "Could not update the list",
		KeyUnread:           "unread",
	}

	// Chinese texts
	l.texts["zh"] = map[string]string{
		KeyAppTitle:         "微博",
		KeyTabHome:          "首页",
		KeyTabVideo:         "视频",
		KeyTabDiscover:      "发现",
		KeyTabMessages:      "消息",
		KeyTabProfile:       "我",
		KeyPullToRefresh:    "下拉刷新",
		KeyReleaseToRefresh: "释放立即刷新",
		KeyRefreshing:       "正在刷新...",
		KeyRefreshed:        "刷新完成",
		KeyLoadingMore:      "加载中...",
		KeyNoMore:           "没有更多了",
		KeyLoadFailed:       "加载失败",
		KeyRetry:            "重试",
		KeyComposeHint:      "有什么新鲜事？",
		KeyPublish:          "发布",
		KeyPublishFailed:    "发布失败",
		KeyEmptyPost:        "请先输入内容",
		KeyEditProfile:      "编辑资料",
		KeyNickname:         "昵称",
		KeyAvatarURL:        "头像地址",
		KeyLanguage:         "语言",
		KeyImmersive:        "沉浸式状态栏",
		KeySave:             "保存",
		KeyCancel:           "取消",
		KeySettingsSaved:    "资料已保存",
		KeyMyPosts:          "我的微博",
		KeyTrendingCached:   "显示缓存列表",
		KeyTrendingUpdated:  "已更新",
		KeyTrendingFailed:   "热搜更新失败",
		KeyUnread:           "未读",
	}
}
