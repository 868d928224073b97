package assets

import (
	"log"

	"github.com/gonewx/invaders/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理音效和背景音乐的播放
//   - 实现 game.SoundPlayer，接收模拟核心的即发即忘播放请求
//   - 同一时间只播放一首背景音乐
//
// 背景音乐分两层状态：场景请求的曲目与暂停（musicID/musicPaused），
// 以及全局静音开关。静音只压住输出，不改变场景的请求，
// 所以静音启动或暂停中取消静音都会回到场景期望的状态。
//
// 找不到或无法解码的音频只记录一次警告，之后静默忽略。
type AudioManager struct {
	resourceManager *ResourceManager
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	musicPlayers    map[string]*audio.Player // 背景音乐播放器缓存（资源ID -> 播放器）
	missing         map[string]bool          // 已确认无法加载的资源ID
	currentMusic    *audio.Player            // 当前已加载的背景音乐播放器
	currentMusicID  string                   // currentMusic 对应的资源ID

	musicID     string  // 场景请求的背景音乐，StopMusic 后为空
	musicVolume float64 // 场景请求的音量
	musicPaused bool    // 场景是否暂停了背景音乐
	muted       bool
}

var _ game.SoundPlayer = (*AudioManager)(nil)

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
func NewAudioManager(rm *ResourceManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		soundPlayers:    make(map[string]*audio.Player),
		musicPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
	}
}

// PlaySound 实现 game.SoundPlayer
// Loop 为 true 或资源清单中声明为循环的请求按背景音乐处理，否则重置并单次播放音效
func (am *AudioManager) PlaySound(cue game.SoundCue) {
	if cue.Loop || am.resourceManager.IsLooping(cue.ID) {
		am.PlayMusic(cue.ID, cue.Volume)
		return
	}
	if am.muted {
		return
	}
	player := am.getPlayer(cue.ID, am.soundPlayers, false)
	if player == nil {
		return
	}

	player.SetVolume(cue.Volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", cue.ID, err)
	}
	player.Play()
}

// PlayMusic 请求循环播放背景音乐
// 静音时只记录请求，取消静音后开始播放；已在播放同一首音乐时只更新音量
//
// 返回：
//   - bool: 本次调用后音乐是否正在播放
func (am *AudioManager) PlayMusic(musicID string, volume float64) bool {
	am.musicID = musicID
	am.musicVolume = volume
	am.musicPaused = false
	return am.syncMusic()
}

// StopMusic 停止当前背景音乐并撤销请求
func (am *AudioManager) StopMusic() {
	am.musicID = ""
	am.musicPaused = false
	am.syncMusic()
}

// PauseMusic 暂停背景音乐（场景进入暂停时调用）
func (am *AudioManager) PauseMusic() {
	am.musicPaused = true
	am.syncMusic()
}

// ResumeMusic 恢复背景音乐（场景回到运行时调用），静音时保持无声
func (am *AudioManager) ResumeMusic() {
	am.musicPaused = false
	am.syncMusic()
}

// SetMuted 全局静音开关
// 取消静音时只恢复场景仍在请求且未暂停的音乐
func (am *AudioManager) SetMuted(muted bool) {
	am.muted = muted
	am.syncMusic()
}

// musicWanted 当前是否应当有背景音乐发声
func (am *AudioManager) musicWanted() bool {
	return am.musicID != "" && !am.musicPaused && !am.muted
}

// syncMusic 让播放器与请求状态一致
//
// 返回：
//   - bool: 音乐是否正在播放
func (am *AudioManager) syncMusic() bool {
	// 曲目被撤销或更换：释放旧播放器
	if am.currentMusic != nil && am.currentMusicID != am.musicID {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}

	if !am.musicWanted() {
		if am.currentMusic != nil {
			am.currentMusic.Pause()
		}
		return false
	}

	if am.currentMusic == nil {
		player := am.getPlayer(am.musicID, am.musicPlayers, true)
		if player == nil {
			return false
		}
		if err := player.Rewind(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", am.musicID, err)
		}
		am.currentMusic = player
		am.currentMusicID = am.musicID
		log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", am.musicID, am.musicVolume)
	}

	am.currentMusic.SetVolume(am.musicVolume)
	if !am.currentMusic.IsPlaying() {
		am.currentMusic.Play()
	}
	return true
}

// IsMuted 返回是否静音
func (am *AudioManager) IsMuted() bool {
	return am.muted
}

// CurrentMusicID 返回当前背景音乐ID，没有时为空
func (am *AudioManager) CurrentMusicID() string {
	return am.currentMusicID
}

// PreloadSounds 预加载音效，避免首次播放时的延迟
// 加载失败的音效被记为缺失，之后的播放请求直接静默
//
// 返回：
//   - int: 成功预加载的音效数
func (am *AudioManager) PreloadSounds(soundIDs []string) int {
	loaded := 0
	for _, soundID := range soundIDs {
		if am.getPlayer(soundID, am.soundPlayers, false) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
	return loaded
}

// getPlayer 获取或加载播放器
func (am *AudioManager) getPlayer(id string, cache map[string]*audio.Player, loop bool) *audio.Player {
	if player, exists := cache[id]; exists {
		return player
	}
	if am.missing[id] {
		return nil
	}

	filePath, exists := am.resourceManager.ResolvePath(id)
	if !exists {
		log.Printf("[AudioManager] Warning: Sound not found: %s", id)
		am.missing[id] = true
		return nil
	}

	var (
		player *audio.Player
		err    error
	)
	if loop {
		player, err = am.resourceManager.LoadAudio(filePath)
	} else {
		player, err = am.resourceManager.LoadSoundEffect(filePath)
	}
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load %s: %v", id, err)
		am.missing[id] = true
		return nil
	}

	cache[id] = player
	return player
}
