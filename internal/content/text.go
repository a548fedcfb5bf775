package content

var (
	AboutIntro = `I'm a computer science student who likes building software that is both useful and fun,
and I'm always curious about how things work behind the scenes.`

	AboutWork = `Most of my projects start with a simple idea and turn into a chance to learn something new:
training a model from scratch, wiring a trading strategy to live market data, or taking a research
paper apart until the results reproduce.`

	AboutNow = `Right now I'm focused on machine learning systems, cloud-native development and modern DevOps
practices, and I'm looking for internships and entry-level roles where I can keep shipping.`

	SkillsBlurb = `I'm passionate about staying current with emerging technologies and continuously expanding my
skill set. Currently exploring advanced AI architectures, cloud-native development, and modern DevOps practices.`
)
