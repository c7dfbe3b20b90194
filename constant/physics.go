package constant

// Paddle kinematics (pixels, pixels/frame)
const (
	// PaddleSpeed is the per-frame velocity increment while a direction key is held
	PaddleSpeed float32 = 0.8

	// PaddleMax caps paddle speed magnitude, increments that would exceed it are dropped
	PaddleMax float32 = 20.0

	// PaddleFriction damps paddle velocity once per frame
	PaddleFriction float32 = 0.9

	// PaddleWallBounce multiplies paddle velocity while touching a horizontal wall
	// Applied every frame the paddle is out of bounds, not only on entry
	PaddleWallBounce float32 = -1.5

	// PaddleInset is the gap between a paddle and its side of the window
	PaddleInset float32 = 16

	// PaddleSpin scales the vertical deflection of an off-centre hit
	PaddleSpin float32 = 4.0
)

// Ball kinematics
const (
	// BallSpeed is the initial horizontal speed, the ball starts moving toward player 1
	BallSpeed float32 = 5.0

	// BallAcc is the fractional speed-up applied on each paddle hit
	BallAcc float32 = 0.05
)
