package docs

// ===================== Register =====================
// @Summary Register a new user
// @Description Register a new account with name, email, phone, and password
// @Tags auth
// @Accept json
// @Produce json
// @Param register body RegisterRequest true "User registration request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /register [post]
func RegisterUserDoc() {}

// ===================== Login =====================
// @Summary Login user
// @Description Login with email and password, returns token and role
// @Tags auth
// @Accept json
// @Produce json
// @Param login body LoginRequest true "User login request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /login [post]
func LoginUserDoc() {}
