package glrender

// The shaders mirror the character pipeline's lighting: lambert
// diffuse with inverse-square falloff over a constant ambient floor,
// then quadratic fog. The terminal fades brightness toward the
// background; here the clear color is the fog color, so mixing to it
// reads the same.

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;

uniform mat4 uView;
uniform mat4 uProj;

out vec3 vWorldPos;
out vec3 vNormal;
out vec3 vColor;
out float vDepth;

void main() {
	vec4 eye = uView * vec4(aPos, 1.0);
	// Camera space runs depth-positive; GL clip space looks down -Z.
	gl_Position = uProj * vec4(eye.x, eye.y, -eye.z, 1.0);
	vWorldPos = aPos;
	vNormal = aNormal;
	vColor = aColor;
	vDepth = eye.z;
}
`

const fragmentShader = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;
in vec3 vColor;
in float vDepth;

uniform vec3 uLightPos;
uniform float uAmbient;
uniform float uFogDistance;
uniform vec3 uFogColor;

out vec4 FragColor;

void main() {
	vec3 toLight = uLightPos - vWorldPos;
	float dist = length(toLight);
	float diff = max(dot(normalize(vNormal), toLight / max(dist, 1e-6)), 0.0);
	float atten = 1.0 / (1.0 + 0.02 * dist * dist);
	float brightness = uAmbient + (1.0 - uAmbient) * diff * atten;
	vec3 lit = vColor * brightness;
	if (uFogDistance > 0.0) {
		float fog = clamp(vDepth / uFogDistance, 0.0, 1.0);
		lit = mix(lit, uFogColor, fog * fog);
	}
	FragColor = vec4(lit, 1.0);
}
`
