package systems

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// SceneFactory builds the scene a system transitions to
type SceneFactory func() interface{}
